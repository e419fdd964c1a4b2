package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/media-code-now/launchcheck-pro/internal/checklist"
	"github.com/media-code-now/launchcheck-pro/internal/models"
	"github.com/media-code-now/launchcheck-pro/internal/progress"
	"github.com/spf13/cobra"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project management commands",
	}

	cmd.AddCommand(newProjectCreateCmd())
	cmd.AddCommand(newProjectListCmd())
	cmd.AddCommand(newProjectShowCmd())
	cmd.AddCommand(newProjectDeleteCmd())
	return cmd
}

func newProjectCreateCmd() *cobra.Command {
	var (
		configPath string
		name       string
		client     string
		domain     string
		status     string
		launchDate string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long:  "Creates a project and materializes a checklist instance from every active template.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := checklist.CreateProjectOpts{
				Name:       name,
				ClientName: client,
				Domain:     domain,
				Status:     status,
			}
			if launchDate != "" {
				t, err := time.Parse("2006-01-02", launchDate)
				if err != nil {
					return fmt.Errorf("invalid launch date %q, expected YYYY-MM-DD", launchDate)
				}
				opts.LaunchDate = &t
			}
			return runProjectCreate(cmd, configPath, opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to LaunchCheck config file")
	cmd.Flags().StringVar(&name, "name", "", "project name (required)")
	cmd.Flags().StringVar(&client, "client", "", "client name")
	cmd.Flags().StringVar(&domain, "domain", "", "site domain")
	cmd.Flags().StringVar(&status, "status", "", "project status")
	cmd.Flags().StringVar(&launchDate, "launch-date", "", "planned launch date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func runProjectCreate(cmd *cobra.Command, configPath string, opts checklist.CreateProjectOpts) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	project, err := checklist.CreateProject(gormDB, opts)
	if err != nil {
		return err
	}

	var instances int64
	gormDB.Model(&models.ChecklistInstance{}).Where("project_id = ?", project.ID).Count(&instances)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created project %s\n", project.ID)
	fmt.Fprintf(out, "Name: %s\n", project.Name)
	fmt.Fprintf(out, "Checklists: %d\n", instances)
	return nil
}

func newProjectListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "Lists all projects with checklist progress. Output is formatted as a table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectList(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to LaunchCheck config file")
	return cmd
}

func runProjectList(cmd *cobra.Command, configPath string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	summaries, err := checklist.ProjectSummaries(gormDB)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(summaries) == 0 {
		fmt.Fprintln(out, "No projects found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCLIENT\tSTATUS\tPROGRESS\tLAUNCH")
	for _, s := range summaries {
		launch := "-"
		if s.LaunchDate != nil {
			launch = s.LaunchDate.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\t%s\n",
			s.ID, truncate(s.Name, 40), truncate(s.ClientName, 24), s.Status, s.Percent, launch)
	}
	w.Flush()
	return nil
}

func newProjectShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show project details",
		Long:  "Displays the project with every checklist and its items, grouped by template.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectShow(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to LaunchCheck config file")
	return cmd
}

func runProjectShow(cmd *cobra.Command, configPath string, id string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	project, err := checklist.ProjectDetail(gormDB, id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Project: %s\n", project.Name)
	fmt.Fprintf(out, "ID:      %s\n", project.ID)
	fmt.Fprintf(out, "Client:  %s\n", project.ClientName)
	fmt.Fprintf(out, "Status:  %s\n", project.Status)
	if project.Domain != "" {
		fmt.Fprintf(out, "Domain:  %s\n", project.Domain)
	}
	if project.LaunchDate != nil {
		fmt.Fprintf(out, "Launch:  %s\n", project.LaunchDate.Format("2006-01-02"))
	}

	for _, inst := range project.ChecklistInstances {
		name := inst.Template.Name
		if name == "" {
			name = inst.TemplateID
		}
		statuses := make([]string, len(inst.Items))
		for i, item := range inst.Items {
			statuses[i] = item.Status
		}
		fmt.Fprintf(out, "\n%s (%d%%)\n", name, progress.Compute(statuses))

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, item := range inst.Items {
			title := item.TemplateItem.Title
			if title == "" {
				title = item.ID
			}
			assignee := item.Assignee
			if assignee == "" {
				assignee = "-"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", statusGlyph(item.Status), truncate(title, 60), assignee)
		}
		w.Flush()
	}
	return nil
}

func newProjectDeleteCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Long:  "Deletes a project along with all of its checklists and items.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			if err := checklist.DeleteProject(gormDB, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to LaunchCheck config file")
	return cmd
}
