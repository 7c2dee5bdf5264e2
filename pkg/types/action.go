package types

// Edit action kinds.
const (
	ActionCheck       = "check"
	ActionUncheck     = "uncheck"
	ActionSetContent  = "set-content"
	ActionSetPriority = "set-priority"
	ActionDrop        = "drop"
)

// Action describes one targeted edit applied through Persister.Edit.
// Content and Priority carry the payload for the set actions; Force
// carries the drop policy so it never has to be read from ambient
// configuration inside the mutation.
type Action struct {
	Kind     string
	Content  string
	Priority Priority
	Force    bool
}
