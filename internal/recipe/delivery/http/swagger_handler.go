package http

// ListRecipes godoc
// @Summary List recipes
// @Description Newest-first page of recipes with optional author, favorite and cart filters
// @Tags Recipes
// @Produce json
// @Param limit query int false "Page size, default 6"
// @Param offset query int false "Page offset"
// @Param author query int false "Filter by author id"
// @Param is_favorited query string false "1 restricts to the viewer's favorites"
// @Param is_in_shopping_cart query string false "1 restricts to the viewer's cart"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/recipes/ [get]
func (h *RecipeHandler) ListRecipesDoc() {}

// CreateRecipe godoc
// @Summary Publish a recipe
// @Description Create a recipe with its ingredient lines
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,text=string,image=string,cooking_time=int,ingredients=[]object{id=int,amount=int}} true "Recipe data"
// @Success 201 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,errors=object}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/recipes/ [post]
func (h *RecipeHandler) CreateRecipeDoc() {}

// GetRecipe godoc
// @Summary Get one recipe
// @Tags Recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/recipes/{id}/ [get]
func (h *RecipeHandler) GetRecipeDoc() {}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Replace the recipe's fields and ingredient lines. Author only.
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param request body object{name=string,text=string,image=string,cooking_time=int,ingredients=[]object{id=int,amount=int}} true "Recipe data"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,errors=object}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/recipes/{id}/ [put]
func (h *RecipeHandler) UpdateRecipeDoc() {}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Description Remove the recipe with its lines and toggle marks. Author only.
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204 "No Content"
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/recipes/{id}/ [delete]
func (h *RecipeHandler) DeleteRecipeDoc() {}

// AddFavorite godoc
// @Summary Add a recipe to favorites
// @Tags Recipes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} object{success=bool,data=object{id=int,name=string,image=string,cooking_time=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/recipes/{id}/favorite/ [post]
func (h *RecipeHandler) AddFavoriteDoc() {}

// RemoveFavorite godoc
// @Summary Remove a recipe from favorites
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204 "No Content"
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/recipes/{id}/favorite/ [delete]
func (h *RecipeHandler) RemoveFavoriteDoc() {}

// AddToCart godoc
// @Summary Add a recipe to the shopping cart
// @Tags Recipes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} object{success=bool,data=object{id=int,name=string,image=string,cooking_time=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/recipes/{id}/shopping_cart/ [post]
func (h *RecipeHandler) AddToCartDoc() {}

// RemoveFromCart godoc
// @Summary Remove a recipe from the shopping cart
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204 "No Content"
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/recipes/{id}/shopping_cart/ [delete]
func (h *RecipeHandler) RemoveFromCartDoc() {}

// DownloadShoppingCart godoc
// @Summary Download the aggregated shopping list
// @Description Plain text report summing ingredient amounts across the cart
// @Tags Recipes
// @Security BearerAuth
// @Produce plain
// @Success 200 {string} string "shopping_list.txt"
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/recipes/download_shopping_cart/ [get]
func (h *RecipeHandler) DownloadShoppingCartDoc() {}

// GetLink godoc
// @Summary Get a short link for a recipe
// @Tags Recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} object{short-link=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/recipes/{id}/get-link/ [get]
func (h *RecipeHandler) GetLinkDoc() {}
