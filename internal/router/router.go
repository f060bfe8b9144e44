package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sharearahammed/mega-earning-server/internal/auth"
	"github.com/sharearahammed/mega-earning-server/internal/config"
	"github.com/sharearahammed/mega-earning-server/internal/handler"
	"github.com/sharearahammed/mega-earning-server/internal/middleware"
	"github.com/sharearahammed/mega-earning-server/internal/model"
	"github.com/sharearahammed/mega-earning-server/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userService service.UserService,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	taskHandler *handler.TaskHandler,
	submissionHandler *handler.SubmissionHandler,
	withdrawalHandler *handler.WithdrawalHandler,
	paymentHandler *handler.PaymentHandler,
	reportHandler *handler.ReportHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/jwt", authHandler.IssueToken)
	e.POST("/logout", authHandler.Logout)
	e.PUT("/users", userHandler.Upsert)
	e.GET("/topEarners", reportHandler.TopEarners)
	e.GET("/feedbacks", reportHandler.Feedbacks)

	// Secured routes: signature/expiry checked by echojwt, then the access
	// gate rejects revoked tokens and resolves the caller's user record.
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), middleware.Authenticated(userService, tokenStore))

	secured.GET("/users/:email", userHandler.Get)
	secured.GET("/tasks", taskHandler.List)
	secured.GET("/tasks/:id", taskHandler.Get)

	// Task creator routes
	creator := secured.Group("", middleware.RequireRole(model.RoleTaskCreator))
	creator.POST("/addTask", taskHandler.Create)
	creator.GET("/myTasks", taskHandler.ListMine)
	creator.PATCH("/tasks/:id", taskHandler.Update)
	creator.GET("/submissions/review", submissionHandler.ListForReview)
	creator.PUT("/submissions/:id/approve", submissionHandler.Approve)
	creator.PUT("/submissions/:id/reject", submissionHandler.Reject)
	creator.POST("/create-payment-intent", paymentHandler.CreateIntent)
	creator.POST("/paymentdata", paymentHandler.Record)
	creator.GET("/payments", paymentHandler.ListMine)

	// Deletion is creator-or-admin; the service checks ownership.
	secured.DELETE("/tasks/:id", taskHandler.Delete,
		middleware.RequireRole(model.RoleTaskCreator, model.RoleAdmin))

	// Worker routes
	worker := secured.Group("", middleware.RequireRole(model.RoleWorker))
	worker.POST("/submissions", submissionHandler.Create)
	worker.GET("/mySubmissions", submissionHandler.ListMine)
	worker.POST("/withdrawals", withdrawalHandler.Request)
	worker.GET("/withdrawals", withdrawalHandler.ListMine)

	// Admin routes
	admin := secured.Group("", middleware.RequireRole(model.RoleAdmin))
	admin.GET("/users", userHandler.List)
	admin.PATCH("/users/role/:email", userHandler.UpdateRole)
	admin.DELETE("/users/:email", userHandler.Delete)
	admin.GET("/withdrawals/all", withdrawalHandler.ListAll)
	admin.DELETE("/withdrawals/:id", withdrawalHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
