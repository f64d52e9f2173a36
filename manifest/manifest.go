package manifest

import "github.com/vk/clibind/argspec"

// Command is one fully parsed command declaration.
type Command struct {
	// Name is the command block's label.
	Name string

	// Description is the command's one-paragraph documentation, if declared.
	Description string

	spec      *argspec.Spec
	paramDocs map[string]string
}

// Spec returns the command's validated parameter spec. It is constructed
// once at load time and safe for concurrent use.
func (c *Command) Spec() *argspec.Spec { return c.spec }

// ParamDoc returns the declared description for the named parameter, or the
// empty string when none was given.
func (c *Command) ParamDoc(name string) string { return c.paramDocs[name] }

// ParamDocs returns a copy of the per-parameter descriptions.
func (c *Command) ParamDocs() map[string]string {
	out := make(map[string]string, len(c.paramDocs))
	for k, v := range c.paramDocs {
		out[k] = v
	}
	return out
}

// Manifest is a set of named commands loaded from one or more HCL files.
type Manifest struct {
	commands map[string]*Command
	order    []string
}

func newManifest() *Manifest {
	return &Manifest{commands: make(map[string]*Command)}
}

// Command looks up a command by name.
func (m *Manifest) Command(name string) (*Command, bool) {
	c, ok := m.commands[name]
	return c, ok
}

// Commands returns the loaded commands in declaration order.
func (m *Manifest) Commands() []*Command {
	out := make([]*Command, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.commands[name])
	}
	return out
}

// Len is the number of commands loaded.
func (m *Manifest) Len() int { return len(m.order) }
