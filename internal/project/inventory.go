package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rafiqul27/rebaropt/internal/model"
)

// DefaultInventoryPath returns the default file path for the saved
// inventory book. This is located at ~/.rebaropt/inventory.json.
func DefaultInventoryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rebaropt", "inventory.json"), nil
}

// SaveInventoryBook writes the inventory book to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveInventoryBook(path string, book model.InventoryBook) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(book, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadInventoryBook reads the inventory book from the specified JSON file.
// If the file does not exist, it returns the default book and saves it.
func LoadInventoryBook(path string) (model.InventoryBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			book := model.DefaultInventoryBook()
			if saveErr := SaveInventoryBook(path, book); saveErr != nil {
				return book, saveErr
			}
			return book, nil
		}
		return model.InventoryBook{}, err
	}
	var book model.InventoryBook
	if err := json.Unmarshal(data, &book); err != nil {
		return model.InventoryBook{}, err
	}
	return book, nil
}

// LoadOrCreateInventoryBook loads the inventory book from the default path.
// If the file does not exist, it creates one with default entries.
func LoadOrCreateInventoryBook() (model.InventoryBook, string, error) {
	path, err := DefaultInventoryPath()
	if err != nil {
		return model.DefaultInventoryBook(), "", err
	}
	book, err := LoadInventoryBook(path)
	return book, path, err
}

// ExportInventoryBook exports the inventory book to a user-specified JSON file.
func ExportInventoryBook(path string, book model.InventoryBook) error {
	return SaveInventoryBook(path, book)
}

// ImportInventoryBook imports an inventory book from a user-specified JSON
// file, merging it with the existing book. Duplicate offcut preset IDs and
// duplicate (dia, lapCase) rule presets are skipped.
func ImportInventoryBook(path string, existing model.InventoryBook) (model.InventoryBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.InventoryBook
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	offcutIDs := make(map[string]bool, len(existing.OffcutPresets))
	for _, o := range existing.OffcutPresets {
		offcutIDs[o.ID] = true
	}
	ruleKeys := make(map[string]bool, len(existing.RulePresets))
	for _, r := range existing.RulePresets {
		ruleKeys[ruleKey(r)] = true
	}

	for _, o := range imported.OffcutPresets {
		if !offcutIDs[o.ID] {
			existing.OffcutPresets = append(existing.OffcutPresets, o)
			offcutIDs[o.ID] = true
		}
	}

	for _, r := range imported.RulePresets {
		key := ruleKey(r)
		if !ruleKeys[key] {
			existing.RulePresets = append(existing.RulePresets, r)
			ruleKeys[key] = true
		}
	}

	return existing, nil
}

func ruleKey(r model.LapRule) string {
	return string(r.LapCase) + "#" + strconv.Itoa(r.Dia)
}
