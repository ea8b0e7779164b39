package commands

import (
	"fmt"
	"path/filepath"

	"jdex/internal/application"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// CreateSession carries the state of the three-step creation flow
// between steps: pick a category, pick a slot, name the folder. It is
// passed structurally from step to step; there is no ambient state.
type CreateSession struct {
	CategoryCode string
	ProposedSlot string
}

// CategoryChoice is one step-1 option, annotated with the first free
// slot so the picker can hint at what the new entry would get.
type CategoryChoice struct {
	Code     string
	Name     string
	AreaCode string
	AreaName string
	NextSlot string // "" when the category is full
	Full     bool
}

// CreateRequest is the confirmed step-3 input
type CreateRequest struct {
	Session CreateSession
	Name    string
}

// CreateResult describes the folder the flow resolved to
type CreateResult struct {
	Code       string
	FolderName string
	Path       string
}

// CreateCommand drives the creation flow. Every step loads the index
// fresh so confirmation catches slots taken since the last look.
type CreateCommand struct {
	store ports.IndexStore
	repo  ports.VaultRepository
}

// NewCreateCommand creates a new CreateCommand
func NewCreateCommand(store ports.IndexStore, repo ports.VaultRepository) *CreateCommand {
	return &CreateCommand{store: store, repo: repo}
}

// Categories returns the step-1 choices in ascending code order
func (c *CreateCommand) Categories() ([]CategoryChoice, error) {
	index, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	var choices []CategoryChoice
	for _, areaCode := range index.SortedAreaCodes() {
		area := index.Area(areaCode)
		for _, catCode := range area.SortedCategoryCodes() {
			cat := area.Categories[catCode]
			choice := CategoryChoice{
				Code:     catCode,
				Name:     cat.Name,
				AreaCode: areaCode,
				AreaName: area.Name,
			}
			suggestions, full := domain.SuggestSlots(catCode, cat)
			choice.Full = full
			if !full {
				if all := suggestions.All(); len(all) > 0 {
					choice.NextSlot = all[0]
				}
			}
			choices = append(choices, choice)
		}
	}
	return choices, nil
}

// Slots returns the step-2 candidates for the session's category:
// gap slots plus the append slot, both always surfaced so the user can
// fill a hole or extend at the end.
func (c *CreateCommand) Slots(session CreateSession) (domain.SlotSuggestions, error) {
	index, err := c.store.Load()
	if err != nil {
		return domain.SlotSuggestions{}, err
	}

	cat, _ := index.Category(session.CategoryCode)
	if cat == nil {
		return domain.SlotSuggestions{}, &application.NotFoundError{Code: session.CategoryCode}
	}

	suggestions, full := domain.SuggestSlots(session.CategoryCode, cat)
	if full {
		return domain.SlotSuggestions{}, fmt.Errorf("%w: %s", application.ErrCategoryFull, session.CategoryCode)
	}
	return suggestions, nil
}

// Confirm validates the step-3 request against a freshly loaded index
// and resolves the folder to create. A slot that collided since the
// session started fails with ErrSlotTaken.
func (c *CreateCommand) Confirm(req CreateRequest) (*CreateResult, error) {
	index, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	result, _, err := c.confirm(index, req)
	return result, err
}

// Execute confirms the request, creates the directory, and patches the
// cached index with the new entry. A full rebuild remains the recovery
// path if the patch is lost.
func (c *CreateCommand) Execute(req CreateRequest) (*CreateResult, error) {
	index, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	result, cat, err := c.confirm(index, req)
	if err != nil {
		return nil, err
	}

	if err := c.repo.CreateFolder(result.Path); err != nil {
		return nil, err
	}

	cat.IDs[result.Code] = &domain.ID{Name: result.FolderName}
	if err := c.store.Save(index); err != nil {
		return nil, fmt.Errorf("folder created but index not updated (rebuild to recover): %w", err)
	}
	return result, nil
}

func (c *CreateCommand) confirm(index *domain.Index, req CreateRequest) (*CreateResult, *domain.Category, error) {
	if err := validateRequest(req); err != nil {
		return nil, nil, err
	}

	session := req.Session
	cat, _ := index.Category(session.CategoryCode)
	if cat == nil {
		return nil, nil, &application.NotFoundError{Code: session.CategoryCode}
	}
	if !domain.SlotFree(cat, session.ProposedSlot) {
		return nil, nil, &application.SlotTakenError{Code: session.ProposedSlot}
	}

	catPath, err := application.ResolvePath(c.repo.Root(), index, session.CategoryCode)
	if err != nil {
		return nil, nil, err
	}

	folderName := domain.FolderName(session.ProposedSlot, req.Name)
	return &CreateResult{
		Code:       session.ProposedSlot,
		FolderName: folderName,
		Path:       filepath.Join(catPath, folderName),
	}, cat, nil
}

func validateRequest(req CreateRequest) error {
	session := req.Session
	if domain.ParseCode(session.CategoryCode) != domain.LevelCategory {
		return &application.ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("expected category code, got: %q", session.CategoryCode),
		}
	}
	if domain.ParseCode(session.ProposedSlot) != domain.LevelID {
		return &application.ValidationError{
			Field:   "slot",
			Message: fmt.Sprintf("expected id code, got: %q", session.ProposedSlot),
		}
	}
	if domain.CategoryOf(session.ProposedSlot) != session.CategoryCode {
		return &application.ValidationError{
			Field:   "slot",
			Message: fmt.Sprintf("slot %s is not in category %s", session.ProposedSlot, session.CategoryCode),
		}
	}
	if req.Name == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "folder name is required",
		}
	}
	return nil
}
