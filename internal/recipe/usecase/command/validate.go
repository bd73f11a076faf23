package command

import (
	"fmt"

	"github.com/foodgram/foodgram-backend/internal/recipe/domain"
	"github.com/foodgram/foodgram-backend/pkg/apperr"
)

// Client-facing messages, kept verbatim from the original API.
const (
	MsgFieldRequired       = "Это поле обязательно."
	MsgFieldRequiredUpdate = "Это поле обязательно для обновления."
	MsgIngredientsRequired = "Пожалуйста, укажите ингредиенты."
	MsgNoDuplicates        = "Ингредиенты не должны повторяться."
	MsgAmountMin           = "Количество должно быть не меньше 1."
	MsgImageEmpty          = "Изображение не может быть пустым."
	MsgCookingTimeMin      = "Время приготовления должно быть не меньше 1."
	MsgUnknownIngredient   = "Ингредиент с id=%d не существует."
)

// UpdateMode distinguishes create, full replace and partial update.
// Partial updates still require every field except image to be resupplied;
// only the stored image survives an omitted field.
type UpdateMode int

const (
	ModeCreate UpdateMode = iota
	ModeReplace
	ModePartial
)

// IngredientAmount is one submitted ingredient entry. Amount is a
// pointer so a missing amount is distinguishable from zero.
type IngredientAmount struct {
	IngredientID uint `json:"id"`
	Amount       *int `json:"amount"`
}

// RecipePayload is the submitted field set for create/update. Pointer
// fields distinguish "absent" from "empty", which the presence rules
// depend on.
type RecipePayload struct {
	Name        *string             `json:"name"`
	Text        *string             `json:"text"`
	CookingTime *int                `json:"cooking_time"`
	Image       *string             `json:"image"`
	Ingredients *[]IngredientAmount `json:"ingredients"`
}

// validate applies the ordered rule set and returns the persisted line
// set. Rules run stage by stage; within a stage all field errors are
// collected into one ValidationError.
func (p *RecipePayload) validate(mode UpdateMode, resolver domain.IngredientResolver) ([]domain.IngredientLine, error) {
	requiredMsg := MsgFieldRequired
	if mode == ModePartial {
		requiredMsg = MsgFieldRequiredUpdate
	}

	// Stage 1: presence. Image is mandatory on create and full replace;
	// on partial update it may be omitted but never emptied.
	missing := apperr.NewValidation()
	if p.Ingredients == nil {
		missing.Add("ingredients", requiredMsg)
	}
	if p.Name == nil {
		missing.Add("name", requiredMsg)
	}
	if p.Text == nil {
		missing.Add("text", requiredMsg)
	}
	if p.CookingTime == nil {
		missing.Add("cooking_time", requiredMsg)
	}
	if p.Image == nil && mode != ModePartial {
		missing.Add("image", requiredMsg)
	}
	if missing.HasErrors() {
		return nil, missing
	}

	// Stage 2: the line list must not be empty.
	entries := *p.Ingredients
	if len(entries) == 0 {
		return nil, apperr.NewValidation().Add("ingredients", MsgIngredientsRequired)
	}

	// Stage 3: every entry references an existing ingredient and carries
	// an amount of at least 1.
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.IngredientID)
	}
	existing, err := resolver.ExistingIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ingredients: %w", err)
	}
	entryErrs := apperr.NewValidation()
	for _, e := range entries {
		if !existing[e.IngredientID] {
			entryErrs.Add("ingredients", fmt.Sprintf(MsgUnknownIngredient, e.IngredientID))
		}
		if e.Amount == nil || *e.Amount < 1 {
			entryErrs.Add("amount", MsgAmountMin)
		}
	}
	if entryErrs.HasErrors() {
		return nil, entryErrs
	}

	// Stage 4: no duplicate ingredient identities, regardless of amounts.
	seen := make(map[uint]bool, len(entries))
	for _, e := range entries {
		if seen[e.IngredientID] {
			return nil, apperr.NewValidation().Add("ingredients", MsgNoDuplicates)
		}
		seen[e.IngredientID] = true
	}

	// Stage 5: a present image must be non-empty, in every mode.
	if p.Image != nil && *p.Image == "" {
		return nil, apperr.NewValidation().Add("image", MsgImageEmpty)
	}

	if *p.CookingTime < 1 {
		return nil, apperr.NewValidation().Add("cooking_time", MsgCookingTimeMin)
	}

	lines := make([]domain.IngredientLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, domain.IngredientLine{
			IngredientID: e.IngredientID,
			Amount:       *e.Amount,
		})
	}
	return lines, nil
}
