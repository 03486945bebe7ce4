package handlers

import (
	"io"
	"log/slog"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession() *services.Session {
	records := []models.Record{
		{ID: 1, Name: "Apex Monitor", Sales: 100, Profit: 20, Region: models.RegionNorth, Category: models.CategoryTechnology, Date: "2024-01-05"},
		{ID: 2, Name: "Nimbus Chair", Sales: 200, Profit: 50, Region: models.RegionSouth, Category: models.CategoryFurniture, Date: "2024-02-10"},
		{ID: 3, Name: "Orbit Desk", Sales: 400, Profit: 90, Region: models.RegionEast, Category: models.CategoryOffice, Date: "2024-03-15"},
	}
	return services.NewSession(records, testLogger(), nil)
}
