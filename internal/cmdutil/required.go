package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequiresMinArgs returns an error if there are fewer than min positional args.
func RequiresMinArgs(minArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) >= minArgs {
			return nil
		}
		return fmt.Errorf(
			"%s: '%s' requires at least %d %s\n\nUsage:  %s",
			binName(cmd), cmd.CommandPath(), minArgs, pluralize("argument", minArgs), cmd.UseLine(),
		)
	}
}

// ExactArgs returns an error if there is not exactly the given number of
// positional args.
func ExactArgs(number int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == number {
			return nil
		}
		return fmt.Errorf(
			"%s: '%s' requires %d %s\n\nUsage:  %s",
			binName(cmd), cmd.CommandPath(), number, pluralize("argument", number), cmd.UseLine(),
		)
	}
}

func binName(cmd *cobra.Command) string {
	return cmd.Root().Name()
}

func pluralize(word string, number int) string {
	if number == 1 {
		return word
	}
	return word + "s"
}
