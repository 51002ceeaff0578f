package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/loyalty/internal/model"
	"github.com/umalmyha/loyalty/internal/service"
)

const (
	giftsEmptyMessage    = "Gift list is empty."
	giftsNotFoundByCode  = "Gifts not found!"
	giftsNotFoundMessage = "Gifts not found."
	authenticatedMessage = "User authenticated successfully."
)

type priceThreshold struct {
	Price int `param:"price"`
}

// GiftHTTPHandler is http handler for gift endpoint
type GiftHTTPHandler struct {
	giftSvc service.GiftService
}

// NewGiftHTTPHandler builds new GiftHTTPHandler
func NewGiftHTTPHandler(giftSvc service.GiftService) *GiftHTTPHandler {
	return &GiftHTTPHandler{giftSvc: giftSvc}
}

// Authenticated confirms that provided credentials are valid
// @Summary     Authentication probe
// @Description Confirms that provided credentials belong to employee or administrator
// @Tags        gifts
// @Security    BasicAuth
// @Produce     json
// @Success     200 {string} string
// @Failure     401 {object} message
// @Router      /api/gifts/auth [get]
func (h *GiftHTTPHandler) Authenticated(c echo.Context) error {
	requestLogger(c).Info("user authenticated")
	return c.JSON(http.StatusOK, authenticatedMessage)
}

// Insert saves gift
// @Summary     Insert gift
// @Description Saves gift, id is assigned if it is missing, existing gift with the same id is replaced
// @Tags        gifts
// @Security    BasicAuth
// @Accept      json
// @Produce     json
// @Param       gift body     model.Gift true "Gift data"
// @Success     201  {object} model.Gift
// @Failure     400  {object} message
// @Failure     401  {object} message
// @Failure     403  {object} message
// @Failure     500  {object} message
// @Router      /api/gifts/insert [post]
func (h *GiftHTTPHandler) Insert(c echo.Context) error {
	requestLogger(c).Info("inserting new gift")

	var g model.Gift
	if err := c.Bind(&g); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	saved, err := h.giftSvc.Save(c.Request().Context(), &g)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, saved)
}

// FindAll gets all gifts
// @Summary     Get all gifts
// @Tags        gifts
// @Security    BasicAuth
// @Produce     json
// @Success     200 {array}  model.Gift
// @Failure     404 {object} message
// @Failure     500 {object} message
// @Router      /api/gifts/find/all [get]
func (h *GiftHTTPHandler) FindAll(c echo.Context) error {
	requestLogger(c).Info("getting all gifts")

	gifts, err := h.giftSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return listOrNotFound(c, gifts, giftsEmptyMessage)
}

// FindByCode searches gifts by code pattern
// @Summary     Find gifts by code
// @Description Returns gifts with code matching pattern, * matches any sequence of characters
// @Tags        gifts
// @Security    BasicAuth
// @Produce     json
// @Param       code path     string true "Code pattern"
// @Success     200  {array}  model.Gift
// @Failure     404  {object} message
// @Failure     500  {object} message
// @Router      /api/gifts/find/code/{code} [get]
func (h *GiftHTTPHandler) FindByCode(c echo.Context) error {
	var p codePattern
	if err := bindParams(c, &p); err != nil {
		return err
	}
	requestLogger(c).WithField("code", p.Code).Info("searching gifts by code")

	gifts, err := h.giftSvc.FindByCodeLike(c.Request().Context(), p.Code)
	if err != nil {
		return err
	}
	return listOrNotFound(c, gifts, giftsNotFoundByCode)
}

// FindByName searches gifts by name pattern
// @Summary     Find gifts by name
// @Description Returns gifts with name matching pattern, * matches any sequence of characters
// @Tags        gifts
// @Security    BasicAuth
// @Produce     json
// @Param       name path     string true "Name pattern"
// @Success     200  {array}  model.Gift
// @Failure     404  {object} message
// @Failure     500  {object} message
// @Router      /api/gifts/find/name/{name} [get]
func (h *GiftHTTPHandler) FindByName(c echo.Context) error {
	var p namePattern
	if err := bindParams(c, &p); err != nil {
		return err
	}
	requestLogger(c).WithField("name", p.Name).Info("searching gifts by name")

	gifts, err := h.giftSvc.FindByNameLike(c.Request().Context(), p.Name)
	if err != nil {
		return err
	}
	return listOrNotFound(c, gifts, giftsNotFoundMessage)
}

// FindByPrice searches gifts which cost at most provided price
// @Summary     Find gifts by price
// @Description Returns gifts with price less than or equal to provided value
// @Tags        gifts
// @Security    BasicAuth
// @Produce     json
// @Param       price path     int true "Maximum price in points"
// @Success     200   {array}  model.Gift
// @Failure     400   {object} message
// @Failure     404   {object} message
// @Failure     500   {object} message
// @Router      /api/gifts/find/price/{price} [get]
func (h *GiftHTTPHandler) FindByPrice(c echo.Context) error {
	var p priceThreshold
	if err := bindParams(c, &p); err != nil {
		return err
	}
	requestLogger(c).WithField("price", p.Price).Info("searching gifts with price up to threshold")

	gifts, err := h.giftSvc.FindByPriceAtMost(c.Request().Context(), p.Price)
	if err != nil {
		return err
	}
	return listOrNotFound(c, gifts, giftsNotFoundMessage)
}

// DeleteByID deletes gift
// @Summary     Delete gift by id
// @Description Deletes gift with provided id, missing gift is not an error
// @Tags        gifts
// @Security    BasicAuth
// @Param       id  path     string true "Gift id"
// @Success     200 "Successful status code"
// @Failure     401 {object} message
// @Failure     403 {object} message
// @Failure     500 {object} message
// @Router      /api/gifts/delete/id/{id} [delete]
func (h *GiftHTTPHandler) DeleteByID(c echo.Context) error {
	var p identifier
	if err := bindParams(c, &p); err != nil {
		return err
	}
	requestLogger(c).WithField("id", p.ID).Info("deleting gift")

	if err := h.giftSvc.DeleteByID(c.Request().Context(), p.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
