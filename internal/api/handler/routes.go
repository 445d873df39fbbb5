package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/statuses",
			Method:      http.MethodGet,
			Handler:     ListStatuses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrPartner()},
		},
		{
			Path:        "/v1/campaigns/:id/status",
			Method:      http.MethodPut,
			Handler:     UpdateCampaignStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id/dashboard",
			Method:      http.MethodGet,
			Handler:     GetClientDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrClient(), middleware.OwnClientOnly("id")},
		},
	}
}

func Alerts(service campaigning.CampaignService, reports ReportProvider) []router.Route {
	routes := []router.Route{
		{
			Path:        "/v1/alerts",
			Method:      http.MethodGet,
			Handler:     GetAlerts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}

	if reports != nil {
		routes = append(routes, router.Route{
			Path:        "/v1/alerts/report",
			Method:      http.MethodGet,
			Handler:     GetLatestAlertReport(reports),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		})
	}

	return routes
}

func Analytics(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics",
			Method:      http.MethodGet,
			Handler:     GetAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/analytics/postal-codes",
			Method:      http.MethodGet,
			Handler:     GetPostalCodes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Snapshots cálculo puro sobre campanhas enviadas pelo chamador
func Snapshots(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/snapshots/alerts",
			Method:      http.MethodPost,
			Handler:     SnapshotAlerts(service.Policy()),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/snapshots/aggregates",
			Method:      http.MethodPost,
			Handler:     SnapshotAggregates(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/snapshots/postal-codes",
			Method:      http.MethodPost,
			Handler:     SnapshotPostalCodes(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/snapshots/filter",
			Method:      http.MethodPost,
			Handler:     SnapshotFilter(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
