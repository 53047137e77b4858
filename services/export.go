package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var fincaExportHeaders = []string{"ID", "Nombre", "NIT", "Tipo Documento", "Guía Certificada", "Contacto", "Teléfono", "Email", "Ciudad", "Activo"}

// BuildFincasWorkbook renders the farm master data as an xlsx workbook
func BuildFincasWorkbook(db *gorm.DB) (*excelize.File, error) {
	fincas, err := GetFincas(db)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Fincas"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, header := range fincaExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, finca := range fincas {
		nit := ""
		if finca.Nit != nil {
			nit = *finca.Nit
		}
		tipoDocumento := ""
		if finca.TipoDocumento != nil {
			tipoDocumento = finca.TipoDocumento.Nombre
		}

		values := []interface{}{
			finca.ID,
			finca.Nombre,
			nit,
			tipoDocumento,
			finca.GeneraGuiaCertificada,
			finca.Contacto,
			finca.Telefono,
			finca.Email,
			finca.Ciudad,
			finca.Activo,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	return f, nil
}
