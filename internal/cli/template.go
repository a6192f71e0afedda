package cli

import (
	"fmt"
	"sort"

	"github.com/blsam/trackie/internal/models"
	"github.com/blsam/trackie/internal/utils"
)

type TemplateAddCmd struct {
	Name    string `arg:"" help:"Template task name."`
	Checked bool   `help:"Pre-check the template for quick apply."`
}

func (cmd *TemplateAddCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		return err
	}
	if _, exists := settings.Templates[cmd.Name]; exists {
		return fmt.Errorf("a template named %q already exists", cmd.Name)
	}
	settings.Templates[cmd.Name] = cmd.Checked
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("Added template: %s\n", cmd.Name)
	return nil
}

type TemplateDeleteCmd struct {
	Name string `arg:"" help:"Template task name."`
}

func (cmd *TemplateDeleteCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		return err
	}
	if _, exists := settings.Templates[cmd.Name]; !exists {
		return fmt.Errorf("no template named %q", cmd.Name)
	}
	delete(settings.Templates, cmd.Name)
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("Deleted template: %s\n", cmd.Name)
	return nil
}

type TemplateListCmd struct{}

func (cmd *TemplateListCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		return err
	}
	if len(settings.Templates) == 0 {
		fmt.Println("No templates.")
		return nil
	}
	for _, name := range sortedTemplates(settings.Templates) {
		marker := " "
		if settings.Templates[name] {
			marker = "x"
		}
		fmt.Printf("[%s] %s\n", marker, name)
	}
	return nil
}

type TemplateApplyCmd struct {
	All bool `help:"Apply every template, not only the checked ones."`
}

func (cmd *TemplateApplyCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		return err
	}

	day := utils.Today()
	manager, err := ctx.LoadDay(day)
	if err != nil {
		return err
	}

	added := 0
	for _, name := range sortedTemplates(settings.Templates) {
		if !cmd.All && !settings.Templates[name] {
			continue
		}
		if manager.Has(name) {
			continue
		}
		if err := manager.Add(models.Task{Name: name}); err != nil {
			return err
		}
		added++
	}
	if added == 0 {
		fmt.Println("Nothing to apply.")
		return nil
	}

	if err := ctx.SaveDay(day, manager); err != nil {
		return err
	}
	fmt.Printf("Applied %d template(s).\n", added)
	return nil
}

func sortedTemplates(templates map[string]bool) []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
