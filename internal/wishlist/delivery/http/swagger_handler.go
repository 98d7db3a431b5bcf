package http

// ListEntries godoc
// @Summary List wishlist entries
// @Description List all wishlist entries. Requires a staff account.
// @Tags Wishlist
// @Security TokenAuth
// @Produce json
// @Success 200 {array} object{id=int,user=int,comic=int,favorite=bool,cart=bool}
// @Failure 401 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /wishlist [get]
func (h *WishlistHandler) ListEntriesDoc() {}

// CreateEntry godoc
// @Summary Add a comic to a wishlist
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param request body object{user=int,comic=int,favorite=bool,cart=bool,wished_qty=int} true "Wishlist entry data"
// @Success 201 {object} object{id=int,user=int,comic=int,favorite=bool}
// @Failure 400 {object} object{user=[]string,comic=[]string,non_field_errors=[]string}
// @Router /wishlist [post]
func (h *WishlistHandler) CreateEntryDoc() {}

// UserFavorites godoc
// @Summary List a user's favorite comics
// @Description Resolve the user's favorite wishlist entries to catalog comics
// @Tags Wishlist
// @Security TokenAuth
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} object{id=int,marvel_id=int,title=string}
// @Failure 401 {object} object{error=string}
// @Router /users/{username}/favorites [get]
func (h *WishlistHandler) UserFavoritesDoc() {}
