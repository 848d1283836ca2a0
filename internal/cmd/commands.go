package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Inspect the merged slash-command registry",
}

var commandsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every registered slash command",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
		cell := lipgloss.NewStyle().Padding(0, 1)

		cmd.Println(header.Render("NAME"), header.Render("SCOPE"), header.Render("DESCRIPTION"))
		for _, c := range engine.Commands() {
			cmd.Println(cell.Render("/"+c.Name), cell.Render(string(c.Scope)), cell.Render(c.Description))
		}
		return nil
	},
}

func init() {
	commandsCmd.AddCommand(commandsListCmd)
}
