package routes

import (
	handlers "stagedesk/handlers/dashboard"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerDashboardRoutes mounts every dashboard page and action under
// /dashboard. Page routes are GET; actions are POST (create/update) and
// DELETE.
func registerDashboardRoutes(app *fiber.App, db *gorm.DB) {
	dashboard := app.Group("/dashboard")

	home := handlers.NewHomeHandler(db)
	dashboard.Get("/home", home.ShowHome)

	search := handlers.NewSearchHandler(db)
	dashboard.Get("/search", search.GlobalSearch)

	reports := handlers.NewReportHandler(db)
	dashboard.Get("/reports/bookings", reports.BookingReport)

	contacts := handlers.NewContactHandler(db)
	contactGroup := dashboard.Group("/contacts")
	contactGroup.Get("/", contacts.ListContacts)
	contactGroup.Get("/create", contacts.ShowCreateContact)
	contactGroup.Post("/create", contacts.CreateContact)
	contactGroup.Get("/update/:id", contacts.ShowUpdateContact)
	contactGroup.Post("/update/:id", contacts.UpdateContact)
	contactGroup.Delete("/delete/:id", contacts.DeleteContact)
	contactGroup.Get("/:id", contacts.ShowContact)

	orgs := handlers.NewOrganizationHandler(db)
	orgGroup := dashboard.Group("/organizations")
	orgGroup.Get("/", orgs.ListOrganizations)
	orgGroup.Get("/create", orgs.ShowCreateOrganization)
	orgGroup.Post("/create", orgs.CreateOrganization)
	orgGroup.Get("/update/:id", orgs.ShowUpdateOrganization)
	orgGroup.Post("/update/:id", orgs.UpdateOrganization)
	orgGroup.Delete("/delete/:id", orgs.DeleteOrganization)
	orgGroup.Get("/:id", orgs.ShowOrganization)

	products := handlers.NewProductHandler(db)
	productGroup := dashboard.Group("/products")
	productGroup.Get("/", products.ListProducts)
	productGroup.Get("/create", products.ShowCreateProduct)
	productGroup.Post("/create", products.CreateProduct)
	productGroup.Get("/update/:id", products.ShowUpdateProduct)
	productGroup.Post("/update/:id", products.UpdateProduct)
	productGroup.Delete("/delete/:id", products.DeleteProduct)
	productGroup.Get("/:id", products.ShowProduct)

	events := handlers.NewEventHandler(db)
	eventGroup := dashboard.Group("/events")
	eventGroup.Get("/", events.ListEvents)
	eventGroup.Get("/create", events.ShowCreateEvent)
	eventGroup.Post("/create", events.CreateEvent)
	eventGroup.Get("/update/:id", events.ShowUpdateEvent)
	eventGroup.Post("/update/:id", events.UpdateEvent)
	eventGroup.Delete("/delete/:id", events.DeleteEvent)
	eventGroup.Get("/:id", events.ShowEvent)

	bookings := handlers.NewEventProductHandler(db)
	bookingGroup := dashboard.Group("/bookings")
	bookingGroup.Post("/create", bookings.CreateBooking)
	bookingGroup.Post("/update/:id", bookings.UpdateBooking)
	bookingGroup.Delete("/delete/:id", bookings.DeleteBooking)
	bookingGroup.Get("/:id", bookings.ShowBooking)

	tasks := handlers.NewTaskHandler(db)
	taskGroup := dashboard.Group("/tasks")
	taskGroup.Get("/", tasks.ListTasks)
	taskGroup.Get("/create", tasks.ShowCreateTask)
	taskGroup.Post("/create", tasks.CreateTask)
	taskGroup.Get("/update/:id", tasks.ShowUpdateTask)
	taskGroup.Post("/update/:id", tasks.UpdateTask)
	taskGroup.Delete("/delete/:id", tasks.DeleteTask)
	taskGroup.Get("/:id", tasks.ShowTask)
}
