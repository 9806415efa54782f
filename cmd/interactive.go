package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ai_site_builder/internal/wizard"
)

const backCommand = "back"

// askSpec walks the form one step at a time, reading answers from in.
// Typing "back" at any prompt returns to the previous step.
func askSpec(in io.Reader, out io.Writer, form *wizard.Wizard) error {
	reader := bufio.NewReader(in)
	for {
		step := form.Step()
		fmt.Fprintf(out, "\n=== Step %d of %d ===\n", step, wizard.LastStep)

		var back bool
		var err error
		switch step {
		case 1:
			back, err = askPurpose(reader, out, form)
		case 2:
			back, err = askSections(reader, out, form)
		case 3:
			back, err = askStyle(reader, out, form)
		default:
			back, err = askAdditionalInfo(reader, out, form)
			if err == nil && !back {
				return nil
			}
		}
		if err != nil {
			return err
		}
		if back {
			form.Prev()
			continue
		}
		if err := form.Next(); err != nil {
			if !errors.Is(err, wizard.ErrIncompleteStep) {
				return err
			}
			fmt.Fprintln(out, strings.TrimPrefix(err.Error(), wizard.ErrIncompleteStep.Error()+": "))
		}
	}
}

func askPurpose(reader *bufio.Reader, out io.Writer, form *wizard.Wizard) (bool, error) {
	fmt.Fprint(out, "What is the purpose of your website? ")
	input, err := readLine(reader)
	if err != nil || input == backCommand {
		return input == backCommand, err
	}
	if input != "" {
		form.SetPurpose(input)
	}
	return false, nil
}

// askSections toggles sections until an empty line is entered.
func askSections(reader *bufio.Reader, out io.Writer, form *wizard.Wizard) (bool, error) {
	for {
		selected := form.Spec().Sections
		fmt.Fprintf(out, "Choose at least %d sections:\n", wizard.MinSections)
		for i, name := range wizard.PredefinedSections {
			mark := " "
			if containsString(selected, name) {
				mark = "x"
			}
			fmt.Fprintf(out, "  [%s] %2d. %s\n", mark, i+1, name)
		}
		for _, name := range selected {
			if !containsString(wizard.PredefinedSections, name) {
				fmt.Fprintf(out, "  [x]     %s\n", name)
			}
		}
		fmt.Fprint(out, "Toggle sections (numbers or names, comma separated; Enter to continue): ")

		input, err := readLine(reader)
		if err != nil || input == backCommand {
			return input == backCommand, err
		}
		if input == "" {
			return false, nil
		}
		for _, token := range strings.Split(input, ",") {
			if name := pickOption(strings.TrimSpace(token), wizard.PredefinedSections); name != "" {
				form.ToggleSection(name)
			}
		}
	}
}

func askStyle(reader *bufio.Reader, out io.Writer, form *wizard.Wizard) (bool, error) {
	questions := []struct {
		label   string
		options []string
		current func() string
		set     func(string)
	}{
		{"Color scheme", wizard.ColorSchemes, func() string { return form.Spec().ColorScheme }, form.SetColorScheme},
		{"Font style", wizard.FontStyles, func() string { return form.Spec().FontStyle }, form.SetFontStyle},
		{"Language", wizard.Languages, func() string { return form.Spec().Language }, form.SetLanguage},
	}
	for _, q := range questions {
		fmt.Fprintf(out, "%s:\n", q.label)
		for i, option := range q.options {
			fmt.Fprintf(out, "  %2d. %s\n", i+1, option)
		}
		if current := q.current(); current != "" {
			fmt.Fprintf(out, "%s (number or name, Enter keeps %q): ", q.label, current)
		} else {
			fmt.Fprintf(out, "%s (number or name): ", q.label)
		}

		input, err := readLine(reader)
		if err != nil || input == backCommand {
			return input == backCommand, err
		}
		if choice := pickOption(input, q.options); choice != "" {
			q.set(choice)
		}
	}
	return false, nil
}

func askAdditionalInfo(reader *bufio.Reader, out io.Writer, form *wizard.Wizard) (bool, error) {
	fmt.Fprint(out, "Anything else the site should include? (optional) ")
	input, err := readLine(reader)
	if err != nil || input == backCommand {
		return input == backCommand, err
	}
	if input != "" {
		form.SetAdditionalInfo(input)
	}
	return false, nil
}

// pickOption resolves a 1-based catalogue number; anything else is taken as a
// free value.
func pickOption(input string, options []string) string {
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1]
		}
		return ""
	}
	return input
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("input ended before the form was complete: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
