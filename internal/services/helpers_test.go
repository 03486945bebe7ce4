package services

import (
	"fmt"

	"sales-dashboard/internal/models"
)

func scenarioRecords() []models.Record {
	return []models.Record{
		{ID: 1, Name: "Apex Monitor", Sales: 100, Profit: 20, Region: models.RegionNorth, Category: models.CategoryTechnology, Date: "2024-01-05"},
		{ID: 2, Name: "Nimbus Chair", Sales: 200, Profit: 50, Region: models.RegionSouth, Category: models.CategoryFurniture, Date: "2024-02-10"},
	}
}

// mixedRecords spans every region and category over three months.
func mixedRecords() []models.Record {
	dates := []string{"2024-03-02", "2024-01-15", "2024-02-20", "2024-03-18", "2024-01-03", "2024-02-07"}
	records := make([]models.Record, 0, 12)
	for i := 0; i < 12; i++ {
		sales := int64(200 + 37*i)
		records = append(records, models.Record{
			ID:       i + 1,
			Name:     fmt.Sprintf("Product %d", i),
			Region:   models.Regions[i%len(models.Regions)],
			Category: models.Categories[i%len(models.Categories)],
			Date:     dates[i%len(dates)],
			Sales:    sales,
			Profit:   sales / 4,
		})
	}
	return records
}
