package editor

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/Sidsector9/tableblock"
)

// Enablement is the environment a command's When predicate is evaluated
// against. It is a pure function of the controller's current table and
// selection state.
type Enablement struct {
	HasTable          bool
	HasSelection      bool
	IsColumnSelection bool
	HasRange          bool
	HasMultiCellRange bool
	RowCount          int
	ColumnCount       int
	HasHeader         bool
	HasFooter         bool
}

// Command is a toolbar command the controller can dispatch. Hosts register
// commands with a When predicate — an expr expression over Enablement —
// and an Apply transformation over the table. Built-in commands set run
// directly and bypass Apply.
type Command struct {
	Name  string
	Label string
	When  string // expr predicate over Enablement; empty means always enabled
	Apply func(t tableblock.Table, sel tableblock.Selection) tableblock.Table

	run     func(c *Controller)
	program *vm.Program
}

// CommandState is what hosts render for one command: a labelled action
// plus its current enabled state.
type CommandState struct {
	Name     string
	Label    string
	Disabled bool
}

// commandRegistry holds commands in registration order.
type commandRegistry struct {
	order  []string
	byName map[string]*Command
}

func newCommandRegistry() *commandRegistry {
	return &commandRegistry{byName: make(map[string]*Command)}
}

// register compiles the command's When predicate and adds it to the
// registry. Re-registering a name replaces the previous command.
func (r *commandRegistry) register(cmd Command) error {
	if cmd.Name == "" {
		return fmt.Errorf("command requires a name")
	}
	if cmd.run == nil {
		if cmd.Apply == nil {
			return fmt.Errorf("command %q requires an Apply function", cmd.Name)
		}
		apply := cmd.Apply
		cmd.run = func(c *Controller) {
			sel, _ := c.tracker.Selection()
			c.setTable(apply(c.table, sel))
		}
	}
	if cmd.When != "" {
		program, err := expr.Compile(cmd.When, expr.Env(Enablement{}), expr.AsBool())
		if err != nil {
			return fmt.Errorf("compile predicate for command %q: %w", cmd.Name, err)
		}
		cmd.program = program
	}

	if _, exists := r.byName[cmd.Name]; !exists {
		r.order = append(r.order, cmd.Name)
	}
	r.byName[cmd.Name] = &cmd
	return nil
}

// enabled evaluates the command's predicate against env. Commands without
// a predicate are always enabled; evaluation errors disable the command
// rather than failing the interaction.
func (r *commandRegistry) enabled(cmd *Command, env Enablement) bool {
	if cmd.program == nil {
		return true
	}
	result, err := expr.Run(cmd.program, env)
	if err != nil {
		return false
	}
	ok, _ := result.(bool)
	return ok
}
