package app

import (
	"golang.org/x/time/rate"

	"go-timesheet/internal/auth"
	"go-timesheet/internal/authz"
	"go-timesheet/internal/calculation"
	"go-timesheet/internal/company"
	"go-timesheet/internal/department"
	"go-timesheet/internal/employee"
	"go-timesheet/internal/middleware"
	"go-timesheet/internal/workingtime"
)

// registerModules wires repositories, services and handlers and mounts every
// route group under /api.
func registerModules(a *App) {
	api := a.Router.Group("/api")
	api.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	authRequired := middleware.AuthMiddleware(a.Config.Auth.JWTSecret)

	guard := authz.NewService(authz.NewRepository(a.DB))
	reportCache := calculation.NewCache(a.Redis, a.Logger)

	authService := auth.NewService(auth.NewRepository(a.DB), auth.TokenConfig{
		Secret:          a.Config.Auth.JWTSecret,
		AccessTokenTTL:  a.Config.Auth.AccessTokenTTL,
		RefreshTokenTTL: a.Config.Auth.RefreshTokenTTL,
	}, a.Logger)
	auth.RegisterRoutes(api, auth.NewHandler(authService, a.Logger))

	companyService := company.NewService(a.SQLDB, company.NewRepository(a.DB), guard, a.Logger)
	company.RegisterRoutes(api, company.NewHandler(companyService, a.Logger), authRequired)

	departmentService := department.NewService(department.NewRepository(a.DB), guard, a.Logger)
	department.RegisterRoutes(api, department.NewHandler(departmentService, a.Logger), authRequired)

	employeeService := employee.NewService(a.SQLDB, employee.NewRepository(a.DB), guard, reportCache, a.Logger)
	employee.RegisterRoutes(api, employee.NewHandler(employeeService, a.Logger), authRequired)

	workingTimeService := workingtime.NewService(a.SQLDB, workingtime.NewRepository(a.DB), guard, reportCache, a.Logger)
	workingtime.RegisterRoutes(api, workingtime.NewHandler(workingTimeService, a.Logger), authRequired)

	calculationService := calculation.NewService(calculation.NewRepository(a.DB), guard, reportCache, a.Logger)
	calculation.RegisterRoutes(api, calculation.NewHandler(calculationService, a.Logger), authRequired)
}
