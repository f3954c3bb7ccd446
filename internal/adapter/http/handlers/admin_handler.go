package handlers

import (
	"errors"
	"fmt"
	"net/http"

	response "thaki_platform/internal/adapter/http/dto/response"
	"thaki_platform/internal/domain/entities"
	"thaki_platform/internal/export"
	"thaki_platform/internal/usecase"
	"thaki_platform/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler backs the back-office dashboard: the aggregated view and the
// per-collection CSV downloads. Filters arrive as query params on every
// request, the server keeps no filter session.

type AdminHandler struct {
	dashboard    usecase.IDashboardUseCase
	messages     usecase.IMessageUseCase
	reviews      usecase.IReviewUseCase
	applications usecase.IApplicationUseCase
	orders       usecase.IOrderUseCase
}

func NewAdminHandler(
	dashboard usecase.IDashboardUseCase,
	messages usecase.IMessageUseCase,
	reviews usecase.IReviewUseCase,
	applications usecase.IApplicationUseCase,
	orders usecase.IOrderUseCase,
) *AdminHandler {
	return &AdminHandler{
		dashboard:    dashboard,
		messages:     messages,
		reviews:      reviews,
		applications: applications,
		orders:       orders,
	}
}

func (h *AdminHandler) GetDashboard(c *gin.Context) {
	state, appErr := filterStateFromQuery(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	view, err := h.dashboard.View(c.Request.Context(), state)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardView(view))
}

// ExportCollection streams one collection as CSV, narrowed by the same
// filters the dashboard tables honor.
func (h *AdminHandler) ExportCollection(c *gin.Context) {
	state, appErr := filterStateFromQuery(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	collection := c.Param("collection")
	filename := c.DefaultQuery("filename", collection)

	csv, err := h.marshalCollection(c, collection, state)
	if err != nil {
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

func (h *AdminHandler) marshalCollection(c *gin.Context, collection string, state entities.FilterState) (string, error) {
	ctx := c.Request.Context()

	switch collection {
	case "payments":
		payments, err := h.dashboard.FilteredPayments(ctx, state.Status)
		if err != nil {
			return "", err
		}
		return export.MarshalCSV(payments)
	case "interests":
		interests, err := h.dashboard.FilteredInterests(ctx, state.Service)
		if err != nil {
			return "", err
		}
		return export.MarshalCSV(interests)
	case "messages":
		messages, err := h.messages.ListMessages(ctx)
		if err != nil {
			return "", err
		}
		return export.MarshalCSV(messages)
	case "reviews":
		reviews, err := h.reviews.ListReviews(ctx)
		if err != nil {
			return "", err
		}
		return export.MarshalCSV(reviews)
	case "applications":
		applications, err := h.applications.ListApplications(ctx)
		if err != nil {
			return "", err
		}
		return export.MarshalCSV(applications)
	case "orders":
		orders, err := h.orders.ListOrders(ctx)
		if err != nil {
			return "", err
		}
		return export.MarshalCSV(orders)
	default:
		return "", errUnknownCollection
	}
}

var errUnknownCollection = errors.New("unknown export collection")

func filterStateFromQuery(c *gin.Context) (entities.FilterState, *pkg.AppError) {
	state := entities.NewFilterState()

	if service := c.Query("service"); service != "" {
		state = state.SelectService(service)
	}
	if status := c.Query("status"); status != "" {
		filter := entities.StatusFilter(status)
		if !filter.Valid() {
			return entities.FilterState{}, pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Unknown status filter", http.StatusBadRequest)
		}
		state = state.SelectStatus(filter)
	}
	if tab := c.Query("tab"); tab != "" {
		state = state.SwitchTab(entities.AdminTab(tab))
	}

	return state, nil
}

func mapExportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, export.ErrNoRecords):
		return pkg.NewDomainErrorSimple("NO_RECORDS", "No records to export", http.StatusNotFound)
	case errors.Is(err, errUnknownCollection):
		return pkg.NewDomainErrorSimple("COLLECTION_NOT_FOUND", "Unknown export collection", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
