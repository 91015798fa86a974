package handlers

import (
	"net/http"
	"time"

	"stagedesk/configs/configslog"
	"stagedesk/models"
	"stagedesk/pkg/flashmessages"
	"stagedesk/pkg/queryparams"
	"stagedesk/pkg/renderer"
	"stagedesk/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const reportDateLayout = "2006-01-02"

// BookingReportRow is one booked product within the requested date range.
type BookingReportRow struct {
	EventID     uint
	EventName   string
	StartDate   time.Time
	EndDate     time.Time
	BookingID   uint
	ProductName string
	GrossPrice  float64
	FeePercent  float64
}

// ReportHandler renders the bookings-per-date-range report. The row set is
// built in memory from the overlapping events, so paging happens client-side.
type ReportHandler struct {
	events services.IEventService
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{events: services.NewEventService(db)}
}

func (h *ReportHandler) BookingReport(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	now := time.Now()
	from, err := time.Parse(reportDateLayout, c.Query("from"))
	if err != nil {
		from = now
	}
	to, err := time.Parse(reportDateLayout, c.Query("to"))
	if err != nil {
		to = from.AddDate(0, 1, 0)
	}
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	renderData := fiber.Map{
		"Title": "Booking Report",
		"From":  from.Format(reportDateLayout),
		"To":    to.Format(reportDateLayout),
	}
	renderer.SetFlashMessages(renderData, flashData)

	events, err := h.events.GetEventsByDateRange(c.UserContext(), from, to)
	if err != nil {
		configslog.Log.Error("BookingReport failed", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Report could not be built."
		renderData["Rows"] = []BookingReportRow{}
		renderData["Meta"] = queryparams.PaginationMeta{}
		return renderer.Render(c, "dashboard/reports/bookings", dashboardLayout, renderData, http.StatusOK)
	}

	rows := flattenBookingRows(events)
	renderData["Rows"] = queryparams.SlicePage(rows, page, queryparams.DefaultPerPage)
	renderData["Meta"] = queryparams.NewPaginationMeta(page, queryparams.DefaultPerPage, int64(len(rows)))
	renderData["NeedsPaging"] = queryparams.NeedsPaging(rows, queryparams.DefaultPerPage)
	return renderer.Render(c, "dashboard/reports/bookings", dashboardLayout, renderData, http.StatusOK)
}

func flattenBookingRows(events []models.Event) []BookingReportRow {
	var rows []BookingReportRow
	for _, event := range events {
		for _, booking := range event.Bookings {
			rows = append(rows, BookingReportRow{
				EventID:     event.ID,
				EventName:   event.Name,
				StartDate:   event.StartDate,
				EndDate:     event.EndDate,
				BookingID:   booking.ID,
				ProductName: booking.Product.Name,
				GrossPrice:  booking.GrossPrice,
				FeePercent:  booking.FeePercent,
			})
		}
	}
	return rows
}
