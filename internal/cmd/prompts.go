package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
)

// confirm asks a yes/no question. The preset *value is the default
// answer shown to the operator.
func confirm(title string, value *bool) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(value),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

func confirmDefaultNo(title string, value *bool) error {
	*value = false
	return confirm(title, value)
}

// promptDest asks for an output directory, offering def as the
// placeholder, and loops until the operator confirms the answer.
func promptDest(title, def string) (string, error) {
	for {
		dest := ""
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(title).
					Placeholder(def).
					Value(&dest),
			),
		)
		if err := form.Run(); err != nil {
			return "", fmt.Errorf("prompt failed: %w", err)
		}
		if dest == "" {
			dest = def
		}
		ok := true
		if err := confirm(fmt.Sprintf("Is %s correct?", dest), &ok); err != nil {
			return "", err
		}
		if ok {
			return dest, nil
		}
	}
}

// defaultDest is the fallback dump directory for a child IOC.
func defaultDest(id string) string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return filepath.Join(wd, id+"_alias")
}
