package commands

import (
	"fmt"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// FolderCommandHandler encapsulates logic for handling folder operations via CLI.
type FolderCommandHandler struct {
	client *apiClient
	logger logger.Logger
}

// NewFolderCommandHandler initializes and returns a FolderCommandHandler instance.
func NewFolderCommandHandler() (*FolderCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &FolderCommandHandler{
		client: newAPIClient(),
		logger: loggerInstance,
	}, nil
}

// ListFoldersCmd lists all folders, newest first
func (commandHandler *FolderCommandHandler) ListFoldersCmd(cmd *cobra.Command, _ []string) {
	apiURL, err := apiURLFlag(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var folderList []struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		CreatedAt string `json:"created_at"`
	}
	if err := commandHandler.client.do("GET", apiURL+"/api/folders", nil, &folderList); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, folder := range folderList {
		fmt.Printf("%d\t%s\t%s\n", folder.ID, folder.Name, folder.CreatedAt)
	}
}

// CreateFolderCmd creates a folder with the given name
func (commandHandler *FolderCommandHandler) CreateFolderCmd(cmd *cobra.Command, _ []string) {
	apiURL, err := apiURLFlag(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}

	var created struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	body := map[string]string{"name": name}
	if err := commandHandler.client.do("POST", apiURL+"/api/folders", body, &created); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Created folder ", created.Name, " with id ", created.ID)
}

// DeleteFolderCmd deletes a folder by id, cascading to its items
func (commandHandler *FolderCommandHandler) DeleteFolderCmd(cmd *cobra.Command, _ []string) {
	apiURL, err := apiURLFlag(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	id, err := cmd.Flags().GetInt64("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	url := fmt.Sprintf("%s/api/folders/%d", apiURL, id)
	if err := commandHandler.client.do("DELETE", url, nil, nil); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Deleted folder with id ", id)
}

// InitFolderCommands registers the folder command group on the root command.
func InitFolderCommands(rootCmd *cobra.Command) error {
	handler, err := NewFolderCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create folder command handler: %w", err)
	}

	listCmd := &cobra.Command{
		Use:   "folder-list",
		Short: "List all folders",
		Run:   handler.ListFoldersCmd,
	}
	listCmd.Flags().String("api-url", defaultAPIURL, "Base URL of the FarmersData API")
	rootCmd.AddCommand(listCmd)

	createCmd := &cobra.Command{
		Use:   "folder-create",
		Short: "Create a folder",
		Run:   handler.CreateFolderCmd,
	}
	createCmd.Flags().String("api-url", defaultAPIURL, "Base URL of the FarmersData API")
	createCmd.Flags().String("name", "", "Name of the folder")
	if err := createCmd.MarkFlagRequired("name"); err != nil {
		return err
	}
	rootCmd.AddCommand(createCmd)

	deleteCmd := &cobra.Command{
		Use:   "folder-delete",
		Short: "Delete a folder and all of its items",
		Run:   handler.DeleteFolderCmd,
	}
	deleteCmd.Flags().String("api-url", defaultAPIURL, "Base URL of the FarmersData API")
	deleteCmd.Flags().Int64("id", 0, "Id of the folder")
	if err := deleteCmd.MarkFlagRequired("id"); err != nil {
		return err
	}
	rootCmd.AddCommand(deleteCmd)

	return nil
}
