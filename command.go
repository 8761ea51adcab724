package pixedit

// CommandKind identifies the kind of edit recorded in history.
type CommandKind uint8

const (
	// CommandPaste records a paste batch.
	CommandPaste CommandKind = iota + 1

	// CommandClear records an erase batch produced by a clear or a cut.
	CommandClear
)

// commandKindNames maps CommandKind values to their string representation.
var commandKindNames = [...]string{
	CommandPaste: "Paste",
	CommandClear: "Clear",
}

// String returns the string representation of a CommandKind.
func (k CommandKind) String() string {
	if int(k) < len(commandKindNames) && commandKindNames[k] != "" {
		return commandKindNames[k]
	}
	return "Unknown"
}
