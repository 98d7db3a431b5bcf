package http

// ListComics godoc
// @Summary List comics
// @Description List the full comic catalog
// @Tags Comics
// @Security TokenAuth
// @Produce json
// @Success 200 {array} object{id=int,marvel_id=int,title=string,price=number,stock_qty=int}
// @Failure 401 {object} object{error=string}
// @Router /comics [get]
func (h *ComicHandler) ListComicsDoc() {}

// CreateComic godoc
// @Summary Create a comic
// @Description Add a comic to the catalog. Requires a staff account.
// @Tags Comics
// @Security TokenAuth
// @Accept json
// @Produce json
// @Param request body object{marvel_id=int,title=string,description=string,price=number,stock_qty=int,picture=string} true "Comic data"
// @Success 201 {object} object{id=int,marvel_id=int,title=string}
// @Failure 400 {object} object{title=[]string,marvel_id=[]string}
// @Failure 401 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /comics [post]
func (h *ComicHandler) CreateComicDoc() {}

// GetComic godoc
// @Summary Get comic by ID
// @Description Returns a single-element list with the comic, or an empty list
// @Tags Comics
// @Security TokenAuth
// @Produce json
// @Param id path int true "Comic ID"
// @Success 200 {array} object{id=int,marvel_id=int,title=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /comics/{id} [get]
func (h *ComicHandler) GetComicDoc() {}

// UpdateComic godoc
// @Summary Update a comic
// @Description Partially update catalog data. Requires a staff account.
// @Tags Comics
// @Security TokenAuth
// @Accept json
// @Produce json
// @Param id path int true "Comic ID"
// @Param request body object{title=string,description=string,price=number,stock_qty=int} true "Fields to update"
// @Success 200 {object} object{id=int,marvel_id=int,title=string}
// @Failure 400 {object} object{title=[]string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /comics/{id} [patch]
func (h *ComicHandler) UpdateComicDoc() {}

// DeleteComic godoc
// @Summary Delete a comic
// @Tags Comics
// @Security TokenAuth
// @Param id path int true "Comic ID"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /comics/{id} [delete]
func (h *ComicHandler) DeleteComicDoc() {}
