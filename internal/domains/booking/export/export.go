// Package export renders booking lists as XLSX workbooks for back-office
// download.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"clinicbook/internal/domains/booking/model"
)

const sheetName = "Bookings"

var columns = []string{"ID", "Service", "Date", "Time", "Duration (min)", "Name", "Phone", "Email", "Status", "Note", "Created At"}

// BookingsWorkbook builds an XLSX workbook with one row per booking.
func BookingsWorkbook(bookings []model.BookingRecord) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName("Sheet1", sheetName)

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("resolve header cell: %w", err)
		}

		if err := file.SetCellValue(sheetName, cell, col); err != nil {
			return nil, fmt.Errorf("write header cell: %w", err)
		}
	}

	style, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, 1)
		endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
		_ = file.SetCellStyle(sheetName, startCell, endCell, style)
	}

	for rowIdx, booking := range bookings {
		row := []any{
			booking.ID,
			booking.ServiceID,
			booking.Date,
			booking.Time,
			booking.DurationMinutes,
			booking.Name,
			booking.Phone,
			booking.Email,
			booking.Status,
			booking.Note,
			booking.CreatedAt.Format("2006-01-02 15:04:05"),
		}

		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("resolve cell: %w", err)
			}

			if err := file.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("write cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
