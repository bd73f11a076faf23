package http

// GetProfile godoc
// @Summary Get a user profile
// @Description Profile with a viewer-relative subscription flag
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/users/{id}/ [get]
func (h *UserHandler) GetProfileDoc() {}

// ListSubscriptions godoc
// @Summary List followed authors
// @Description Authors the caller follows, each with a recipe preview
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size, default 6"
// @Param offset query int false "Page offset"
// @Param recipes_limit query int false "Max recipes per author"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/users/subscriptions/ [get]
func (h *UserHandler) ListSubscriptionsDoc() {}

// Subscribe godoc
// @Summary Follow an author
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "Author ID"
// @Param recipes_limit query int false "Max recipes in the response preview"
// @Success 201 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/users/{id}/subscribe/ [post]
func (h *UserHandler) SubscribeDoc() {}

// Unsubscribe godoc
// @Summary Unfollow an author
// @Tags Users
// @Security BearerAuth
// @Param id path int true "Author ID"
// @Success 204 "No Content"
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/users/{id}/subscribe/ [delete]
func (h *UserHandler) UnsubscribeDoc() {}

// SetAvatar godoc
// @Summary Set the caller's avatar
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{avatar=string} true "Base64 encoded image"
// @Success 200 {object} object{success=bool,data=object{avatar=string}}
// @Failure 400 {object} object{success=bool,errors=object}
// @Router /api/users/me/avatar/ [put]
func (h *UserHandler) SetAvatarDoc() {}

// DeleteAvatar godoc
// @Summary Remove the caller's avatar
// @Tags Users
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/users/me/avatar/ [delete]
func (h *UserHandler) DeleteAvatarDoc() {}
