package commands

import (
	"fmt"
	"net/url"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ItemCommandHandler encapsulates logic for handling item operations via CLI.
type ItemCommandHandler struct {
	client *apiClient
	logger logger.Logger
}

// NewItemCommandHandler initializes and returns an ItemCommandHandler instance.
func NewItemCommandHandler() (*ItemCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &ItemCommandHandler{
		client: newAPIClient(),
		logger: loggerInstance,
	}, nil
}

type itemPayload struct {
	FolderID    int64  `json:"folder_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ContactInfo string `json:"contact_info,omitempty"`
	Location    string `json:"location,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type itemResult struct {
	ID          int64  `json:"id"`
	FolderID    int64  `json:"folder_id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	IsActive    bool   `json:"is_active"`
	IsVerified  bool   `json:"is_verified"`
	FolderName  string `json:"folder_name"`
	Description string `json:"description"`
}

// CreateItemCmd creates an item inside a folder
func (commandHandler *ItemCommandHandler) CreateItemCmd(cmd *cobra.Command, _ []string) {
	apiURL, err := apiURLFlag(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	payload := itemPayload{}
	if payload.FolderID, err = cmd.Flags().GetInt64("folder-id"); err != nil {
		commandHandler.logger.Error("invalid folder-id flag ", err)
		return
	}
	if payload.Name, err = cmd.Flags().GetString("name"); err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	payload.Description, _ = cmd.Flags().GetString("description")
	payload.ContactInfo, _ = cmd.Flags().GetString("contact-info")
	payload.Location, _ = cmd.Flags().GetString("location")
	payload.Notes, _ = cmd.Flags().GetString("notes")

	var created itemResult
	if err := commandHandler.client.do("POST", apiURL+"/api/items", payload, &created); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Created item ", created.Name, " with id ", created.ID)
}

// ListItemsCmd lists the items of a folder, newest first
func (commandHandler *ItemCommandHandler) ListItemsCmd(cmd *cobra.Command, _ []string) {
	apiURL, err := apiURLFlag(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	folderID, err := cmd.Flags().GetInt64("folder-id")
	if err != nil {
		commandHandler.logger.Error("invalid folder-id flag ", err)
		return
	}

	var itemList []itemResult
	listURL := fmt.Sprintf("%s/api/folders/%d/items", apiURL, folderID)
	if err := commandHandler.client.do("GET", listURL, nil, &itemList); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, item := range itemList {
		fmt.Printf("%d\t%s\t%s\n", item.ID, item.Name, item.Location)
	}
}

// SearchItemsCmd searches items across all folders
func (commandHandler *ItemCommandHandler) SearchItemsCmd(cmd *cobra.Command, _ []string) {
	apiURL, err := apiURLFlag(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	query, err := cmd.Flags().GetString("query")
	if err != nil {
		commandHandler.logger.Error("invalid query flag ", err)
		return
	}

	var results []itemResult
	searchURL := apiURL + "/api/search?query=" + url.QueryEscape(query)
	if err := commandHandler.client.do("GET", searchURL, nil, &results); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, item := range results {
		fmt.Printf("%d\t%s\t%s\n", item.ID, item.Name, item.FolderName)
	}
}

// InitItemCommands registers the item command group on the root command.
func InitItemCommands(rootCmd *cobra.Command) error {
	handler, err := NewItemCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create item command handler: %w", err)
	}

	createCmd := &cobra.Command{
		Use:   "item-create",
		Short: "Create an item inside a folder",
		Run:   handler.CreateItemCmd,
	}
	createCmd.Flags().String("api-url", defaultAPIURL, "Base URL of the FarmersData API")
	createCmd.Flags().Int64("folder-id", 0, "Id of the owning folder")
	createCmd.Flags().String("name", "", "Name of the item")
	createCmd.Flags().String("description", "", "Description of the item")
	createCmd.Flags().String("contact-info", "", "Contact information")
	createCmd.Flags().String("location", "", "Location of the item")
	createCmd.Flags().String("notes", "", "Free-form notes")
	if err := createCmd.MarkFlagRequired("folder-id"); err != nil {
		return err
	}
	if err := createCmd.MarkFlagRequired("name"); err != nil {
		return err
	}
	rootCmd.AddCommand(createCmd)

	listCmd := &cobra.Command{
		Use:   "item-list",
		Short: "List the items of a folder",
		Run:   handler.ListItemsCmd,
	}
	listCmd.Flags().String("api-url", defaultAPIURL, "Base URL of the FarmersData API")
	listCmd.Flags().Int64("folder-id", 0, "Id of the folder")
	if err := listCmd.MarkFlagRequired("folder-id"); err != nil {
		return err
	}
	rootCmd.AddCommand(listCmd)

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search items across all folders",
		Run:   handler.SearchItemsCmd,
	}
	searchCmd.Flags().String("api-url", defaultAPIURL, "Base URL of the FarmersData API")
	searchCmd.Flags().String("query", "", "Substring to search for")
	if err := searchCmd.MarkFlagRequired("query"); err != nil {
		return err
	}
	rootCmd.AddCommand(searchCmd)

	return nil
}
