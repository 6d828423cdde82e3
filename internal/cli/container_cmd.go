package cli

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/spf13/cobra"
)

func newContainerCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "container",
		Short: "Manage containers (separate sets of books)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			containers, err := a.services.Container.ListContainers(cmd.Context())
			if err != nil {
				return err
			}
			return a.render.emit(containers, func() string { return containersMarkdown(containers) })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := a.services.Container.CreateContainer(cmd.Context(), dto.CreateContainerRequest{Name: args[0]})
			if err != nil {
				return err
			}
			return a.render.emit(container, func() string { return containersMarkdown([]domain.Container{*container}) })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "container")
			if err != nil {
				return err
			}
			container, err := a.services.Container.RenameContainer(cmd.Context(), id, dto.UpdateContainerRequest{Name: args[1]})
			if err != nil {
				return err
			}
			return a.render.emit(container, func() string { return containersMarkdown([]domain.Container{*container}) })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a container with all of its accounts and transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "container")
			if err != nil {
				return err
			}
			if err := a.services.Container.DeleteContainer(cmd.Context(), id); err != nil {
				return err
			}
			result := map[string]int64{"deletedContainerID": id}
			return a.render.emit(result, func() string { return fmt.Sprintf("Deleted container %d.\n", id) })
		},
	})

	return cmd
}

func containersMarkdown(containers []domain.Container) string {
	rows := make([][]string, 0, len(containers))
	for _, c := range containers {
		rows = append(rows, []string{strconv.FormatInt(c.ContainerID, 10), c.Name, formatDate(c.CreatedAt)})
	}
	return heading("Containers") + table([]string{"ID", "Name", "Created"}, rows)
}
