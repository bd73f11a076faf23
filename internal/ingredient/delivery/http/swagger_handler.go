package http

// SearchIngredients godoc
// @Summary Search the ingredient catalog
// @Description Case-insensitive name prefix search, ordered by name
// @Tags Ingredients
// @Produce json
// @Param name query string false "Name prefix"
// @Success 200 {array} object{id=int,name=string,measurement_unit=string}
// @Router /api/ingredients/ [get]
func (h *IngredientHandler) SearchIngredientsDoc() {}

// GetIngredient godoc
// @Summary Get one catalog entry
// @Tags Ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} object{id=int,name=string,measurement_unit=string}
// @Failure 404 {object} object{error=string}
// @Router /api/ingredients/{id}/ [get]
func (h *IngredientHandler) GetIngredientDoc() {}
