package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/media-code-now/launchcheck-pro/internal/checklist"
	"github.com/spf13/cobra"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Checklist template commands",
	}

	cmd.AddCommand(newTemplateListCmd())
	cmd.AddCommand(newTemplateCreateCmd())
	return cmd
}

func newTemplateListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List checklist templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateList(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to LaunchCheck config file")
	return cmd
}

func runTemplateList(cmd *cobra.Command, configPath string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	templates, err := checklist.ListTemplates(gormDB)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(templates) == 0 {
		fmt.Fprintln(out, "No templates found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tITEMS\tACTIVE")
	for _, t := range templates {
		active := "yes"
		if !t.IsActive {
			active = "no"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			t.ID, truncate(t.Name, 40), t.Type, len(t.Items), active)
	}
	w.Flush()
	return nil
}

func newTemplateCreateCmd() *cobra.Command {
	var (
		configPath   string
		name         string
		description  string
		templateType string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty checklist template",
		Long:  "Creates a checklist template with no items. Template names must be unique.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			t, err := checklist.CreateTemplate(gormDB, checklist.CreateTemplateOpts{
				Name:        name,
				Description: description,
				Type:        templateType,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created template %s (%s)\n", t.ID, t.Type)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to LaunchCheck config file")
	cmd.Flags().StringVar(&name, "name", "", "template name (required)")
	cmd.Flags().StringVar(&description, "description", "", "template description")
	cmd.Flags().StringVar(&templateType, "type", "PRE_LAUNCH", "template type (PRE_LAUNCH, POST_LAUNCH)")
	cmd.MarkFlagRequired("name")
	return cmd
}
