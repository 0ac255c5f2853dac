package options

import (
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// ConfirmOptions controls whether destructive commands ask before acting.
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Do not ask for confirmation.")
}

// Confirmer returns the prompt to run before a destructive action, or nil
// when --yes was given.
func (o *ConfirmOptions) Confirmer() func(string) bool {
	if o.Yes {
		return nil
	}
	return Confirm
}

// Confirm asks a y/N question on the terminal. Anything but yes declines.
func Confirm(label string) bool {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} ",
		Valid:   "{{ . | red }} ",
		Invalid: "{{ . | red }} ",
		Success: "{{ . | bold }} ",
	}
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Templates: templates,
	}
	_, err := prompt.Run()
	return err == nil
}
