package infra

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/umalmyha/loyalty/internal/auth"
	"github.com/umalmyha/loyalty/internal/config"
	"github.com/umalmyha/loyalty/internal/handlers"
	"github.com/umalmyha/loyalty/internal/middleware"
	"github.com/umalmyha/loyalty/internal/service"
	"github.com/umalmyha/loyalty/internal/validation"
)

const swaggerPattern = "/swagger/**"

// Router builds echo instance with all api routes registered
func Router(
	httpCfg config.HTTPCfg,
	realm string,
	verifier auth.CredentialVerifier,
	customerSvc service.CustomerService,
	giftSvc service.GiftService,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.ErrorHandler

	v, err := validation.NewEnglish()
	if err != nil {
		return nil, fmt.Errorf("failed to build validator - %w", err)
	}
	e.Validator = v

	// Middleware
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{httpCfg.AllowedOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.Authorize(verifier, auth.APIPolicy(swaggerPattern), realm))

	// Handlers
	customerHandler := handlers.NewCustomerHTTPHandler(customerSvc)
	giftHandler := handlers.NewGiftHTTPHandler(giftSvc)

	// Docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// customers
	customersAPI := api.Group("/customers")
	customersAPI.POST("/insert", customerHandler.Insert)
	customersAPI.GET("/find/all", customerHandler.FindAll)
	customersAPI.GET("/find/code/:code", customerHandler.FindByCode)
	customersAPI.GET("/find/name/:name", customerHandler.FindByName)
	customersAPI.GET("/find/points/:points", customerHandler.FindByPoints)
	customersAPI.DELETE("/delete/id/:id", customerHandler.DeleteByID)

	// gifts
	giftsAPI := api.Group("/gifts")
	giftsAPI.GET("/auth", giftHandler.Authenticated)
	giftsAPI.POST("/insert", giftHandler.Insert)
	giftsAPI.GET("/find/all", giftHandler.FindAll)
	giftsAPI.GET("/find/code/:code", giftHandler.FindByCode)
	giftsAPI.GET("/find/name/:name", giftHandler.FindByName)
	giftsAPI.GET("/find/price/:price", giftHandler.FindByPrice)
	giftsAPI.DELETE("/delete/id/:id", giftHandler.DeleteByID)

	return e, nil
}
