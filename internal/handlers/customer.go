package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/loyalty/internal/model"
	"github.com/umalmyha/loyalty/internal/service"
)

const (
	customersEmptyMessage    = "Customer list is empty."
	customersNotFoundByCode  = "Customers not found!"
	customersNotFoundMessage = "Customers not found."
)

type pointsThreshold struct {
	Points int `param:"points"`
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// Insert saves customer
// @Summary     Insert customer
// @Description Saves customer, id is assigned if it is missing, existing customer with the same id is replaced
// @Tags        customers
// @Security    BasicAuth
// @Accept      json
// @Produce     json
// @Param       customer body     model.Customer true "Customer data"
// @Success     201      {object} model.Customer
// @Failure     400      {object} message
// @Failure     401      {object} message
// @Failure     403      {object} message
// @Failure     500      {object} message
// @Router      /api/customers/insert [post]
func (h *CustomerHTTPHandler) Insert(c echo.Context) error {
	requestLogger(c).Info("inserting new customer")

	var cust model.Customer
	if err := c.Bind(&cust); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	saved, err := h.customerSvc.Save(c.Request().Context(), &cust)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, saved)
}

// FindAll gets all customers
// @Summary     Get all customers
// @Tags        customers
// @Security    BasicAuth
// @Produce     json
// @Success     200 {array}  model.Customer
// @Failure     404 {object} message
// @Failure     500 {object} message
// @Router      /api/customers/find/all [get]
func (h *CustomerHTTPHandler) FindAll(c echo.Context) error {
	requestLogger(c).Info("getting all customers")

	customers, err := h.customerSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return listOrNotFound(c, customers, customersEmptyMessage)
}

// FindByCode searches customers by code pattern
// @Summary     Find customers by code
// @Description Returns customers with code matching pattern, * matches any sequence of characters
// @Tags        customers
// @Security    BasicAuth
// @Produce     json
// @Param       code path     string true "Code pattern"
// @Success     200  {array}  model.Customer
// @Failure     404  {object} message
// @Failure     500  {object} message
// @Router      /api/customers/find/code/{code} [get]
func (h *CustomerHTTPHandler) FindByCode(c echo.Context) error {
	var p codePattern
	if err := bindParams(c, &p); err != nil {
		return err
	}
	requestLogger(c).WithField("code", p.Code).Info("searching customers by code")

	customers, err := h.customerSvc.FindByCodeLike(c.Request().Context(), p.Code)
	if err != nil {
		return err
	}
	return listOrNotFound(c, customers, customersNotFoundByCode)
}

// FindByName searches customers by name pattern
// @Summary     Find customers by name
// @Description Returns customers with name matching pattern, * matches any sequence of characters
// @Tags        customers
// @Security    BasicAuth
// @Produce     json
// @Param       name path     string true "Name pattern"
// @Success     200  {array}  model.Customer
// @Failure     404  {object} message
// @Failure     500  {object} message
// @Router      /api/customers/find/name/{name} [get]
func (h *CustomerHTTPHandler) FindByName(c echo.Context) error {
	var p namePattern
	if err := bindParams(c, &p); err != nil {
		return err
	}
	requestLogger(c).WithField("name", p.Name).Info("searching customers by name")

	customers, err := h.customerSvc.FindByNameLike(c.Request().Context(), p.Name)
	if err != nil {
		return err
	}
	return listOrNotFound(c, customers, customersNotFoundMessage)
}

// FindByPoints searches customers having more points than threshold
// @Summary     Find customers by points
// @Description Returns customers with points strictly greater than provided value
// @Tags        customers
// @Security    BasicAuth
// @Produce     json
// @Param       points path     int true "Points threshold"
// @Success     200    {array}  model.Customer
// @Failure     400    {object} message
// @Failure     404    {object} message
// @Failure     500    {object} message
// @Router      /api/customers/find/points/{points} [get]
func (h *CustomerHTTPHandler) FindByPoints(c echo.Context) error {
	var p pointsThreshold
	if err := bindParams(c, &p); err != nil {
		return err
	}
	requestLogger(c).WithField("points", p.Points).Info("searching customers with more points than threshold")

	customers, err := h.customerSvc.FindByPointsGreaterThan(c.Request().Context(), p.Points)
	if err != nil {
		return err
	}
	return listOrNotFound(c, customers, customersNotFoundMessage)
}

// DeleteByID deletes customer
// @Summary     Delete customer by id
// @Description Deletes customer with provided id, missing customer is not an error
// @Tags        customers
// @Security    BasicAuth
// @Param       id  path     string true "Customer id"
// @Success     200 "Successful status code"
// @Failure     401 {object} message
// @Failure     403 {object} message
// @Failure     500 {object} message
// @Router      /api/customers/delete/id/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	var p identifier
	if err := bindParams(c, &p); err != nil {
		return err
	}
	requestLogger(c).WithField("id", p.ID).Info("deleting customer")

	if err := h.customerSvc.DeleteByID(c.Request().Context(), p.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
