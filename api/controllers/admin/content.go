package admin

import (
	"net/http"

	"github.com/angelmondragon/clubhouse-backend/internal/matches"
	"github.com/angelmondragon/clubhouse-backend/internal/news"
	product "github.com/angelmondragon/clubhouse-backend/internal/products"
	"github.com/angelmondragon/clubhouse-backend/internal/sponsors"
	"github.com/angelmondragon/clubhouse-backend/internal/team"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
)

// Resource groups the CRUD handlers of one admin collection.
type Resource struct {
	List, Create, Update, Delete http.HandlerFunc
}

func News(svc news.Service, logg *logger.Logger) Resource {
	return Resource{
		List:   listHandler(svc.AdminList, logg),
		Create: createHandler(svc.Create, logg),
		Update: updateHandler(svc.Update, logg),
		Delete: deleteHandler(svc.Delete, logg),
	}
}

func Matches(svc matches.Service, logg *logger.Logger) Resource {
	return Resource{
		List:   listHandler(svc.AdminList, logg),
		Create: createHandler(svc.Create, logg),
		Update: updateHandler(svc.Update, logg),
		Delete: deleteHandler(svc.Delete, logg),
	}
}

func Team(svc team.Service, logg *logger.Logger) Resource {
	return Resource{
		List:   listHandler(svc.AdminList, logg),
		Create: createHandler(svc.Create, logg),
		Update: updateHandler(svc.Update, logg),
		Delete: deleteHandler(svc.Delete, logg),
	}
}

func Sponsors(svc sponsors.Service, logg *logger.Logger) Resource {
	return Resource{
		List:   listHandler(svc.AdminList, logg),
		Create: createHandler(svc.Create, logg),
		Update: updateHandler(svc.Update, logg),
		Delete: deleteHandler(svc.Delete, logg),
	}
}

func Products(svc product.Service, logg *logger.Logger) Resource {
	return Resource{
		List:   listHandler(svc.AdminList, logg),
		Create: createHandler(svc.Create, logg),
		Update: updateHandler(svc.Update, logg),
		Delete: deleteHandler(svc.Delete, logg),
	}
}
