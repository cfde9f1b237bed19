package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/emmavarela/invitados-server/services"
)

const maxTamanoExcel = 5 << 20 // 5MB

// Encabezados aceptados, en minúsculas. El Excel viene de manos no técnicas,
// así que se toleran variantes.
var columnasExcel = map[string][]string{
	"nombre":   {"nombre completo", "nombre", "nombre_completo"},
	"telefono": {"teléfono (opcional)", "teléfono", "telefono", "phone"},
	"cantidad": {"cantidad invitaciones", "cantidad", "cantidad_invitaciones", "invitaciones"},
	"mensaje":  {"mensaje (opcional)", "mensaje", "message"},
}

// POST /api/admin/excel/upload — carga masiva de invitados desde un .xlsx.
// Las filas con error se informan pero no cortan el lote.
func UploadExcel(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No se ha enviado ningún archivo"})
		return
	}
	if fileHeader.Size > maxTamanoExcel {
		c.JSON(http.StatusBadRequest, gin.H{"message": "El archivo supera el máximo de 5MB"})
		return
	}

	archivo, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No se pudo leer el archivo"})
		return
	}
	defer archivo.Close()

	wb, err := excelize.OpenReader(archivo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Solo se permiten archivos Excel (.xlsx)"})
		return
	}
	defer wb.Close()

	hojas := wb.GetSheetList()
	if len(hojas) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "El archivo Excel está vacío"})
		return
	}

	filas, err := wb.GetRows(hojas[0])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No se pudo leer la hoja"})
		return
	}
	if len(filas) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No se encontraron datos en el archivo Excel"})
		return
	}

	indices := mapearColumnas(filas[0])
	if _, ok := indices["nombre"]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Falta la columna Nombre"})
		return
	}

	var datos []services.CrearInvitadoDatos
	var errores []string

	for i, fila := range filas[1:] {
		numeroFila := i + 2 // la fila 1 es el encabezado

		nombre := strings.TrimSpace(celda(fila, indices, "nombre"))
		if nombre == "" {
			errores = append(errores, fmt.Sprintf("Fila %d: el nombre es obligatorio", numeroFila))
			continue
		}

		telefono := strings.Join(strings.Fields(celda(fila, indices, "telefono")), " ")
		if telefono != "" && len(telefono) < 10 {
			errores = append(errores, fmt.Sprintf("Fila %d: el teléfono debe tener al menos 10 caracteres o estar vacío", numeroFila))
			continue
		}

		cantidad := 1
		if crudo := strings.TrimSpace(celda(fila, indices, "cantidad")); crudo != "" {
			cantidad, err = strconv.Atoi(crudo)
			if err != nil || cantidad < 1 {
				errores = append(errores, fmt.Sprintf("Fila %d: cantidad de invitaciones inválida", numeroFila))
				continue
			}
		}

		datos = append(datos, services.CrearInvitadoDatos{
			Nombre:               nombre,
			Telefono:             telefono,
			Mensaje:              strings.TrimSpace(celda(fila, indices, "mensaje")),
			CantidadInvitaciones: cantidad,
		})
	}

	creados, erroresAlta := invitadoService.CrearEnLote(datos)
	errores = append(errores, erroresAlta...)

	lista := make([]gin.H, 0, len(creados))
	for i := range creados {
		lista = append(lista, proyeccionInvitado(&creados[i], nil))
	}

	c.JSON(http.StatusOK, gin.H{
		"total":      len(filas) - 1,
		"procesados": len(creados),
		"errores":    errores,
		"data":       lista,
	})
}

// GET /api/admin/excel/plantilla — descarga el .xlsx de ejemplo para la carga.
func PlantillaExcel(c *gin.Context) {
	wb := excelize.NewFile()
	defer wb.Close()

	hoja := "Invitados"
	wb.SetSheetName("Sheet1", hoja)

	encabezados := []string{"Nombre Completo", "Teléfono (Opcional)", "Cantidad Invitaciones", "Mensaje (Opcional)"}
	for i, titulo := range encabezados {
		col, _ := excelize.ColumnNumberToName(i + 1)
		wb.SetCellValue(hoja, col+"1", titulo)
	}

	ejemplos := [][]any{
		{"Ana Gómez", "+54 11 5555 1234", 3, "Mesa familia"},
		{"Luis Pérez", "", 1, ""},
	}
	for f, fila := range ejemplos {
		for i, valor := range fila {
			col, _ := excelize.ColumnNumberToName(i + 1)
			wb.SetCellValue(hoja, fmt.Sprintf("%s%d", col, f+2), valor)
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo generar la plantilla"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="plantilla_invitados.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func mapearColumnas(encabezado []string) map[string]int {
	indices := make(map[string]int)
	for i, titulo := range encabezado {
		limpio := strings.ToLower(strings.TrimSpace(titulo))
		for clave, variantes := range columnasExcel {
			for _, variante := range variantes {
				if limpio == variante {
					if _, ya := indices[clave]; !ya {
						indices[clave] = i
					}
				}
			}
		}
	}
	return indices
}

func celda(fila []string, indices map[string]int, clave string) string {
	i, ok := indices[clave]
	if !ok || i >= len(fila) {
		return ""
	}
	return fila[i]
}
