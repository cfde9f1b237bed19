package controllers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emmavarela/invitados-server/config"
	"github.com/emmavarela/invitados-server/models"
)

// POST /api/admin/exportaciones — encola la exportación del listado de
// invitados y devuelve el job para consultar después.
func CreateExport(c *gin.Context) {
	jobID := uuid.New().String()
	job := models.ExportJob{
		JobID:   jobID,
		Formato: "csv",
		Status:  "queued",
	}
	if err := config.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo encolar la exportación"})
		return
	}

	go processExportJob(jobID)

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": jobID,
		"status": "queued",
	})
}

// GET /api/admin/exportaciones/:job_id
func GetExport(c *gin.Context) {
	jobID := c.Param("job_id")
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error de base de datos"})
		return
	}

	if job.Status == "done" && job.FilePath != nil {
		c.FileAttachment(*job.FilePath, path.Base(*job.FilePath))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id": job.JobID,
		"status": job.Status,
		"error":  job.ErrorMsg,
	})
}

// worker de exportación a CSV
func processExportJob(jobID string) {
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		return
	}
	config.DB.Model(&job).Update("status", "processing")

	fallar := func(err error) {
		em := err.Error()
		config.DB.Model(&job).Updates(map[string]interface{}{"status": "failed", "error_msg": em})
	}

	outDir := "./exports"
	os.MkdirAll(outDir, 0755)

	filename := fmt.Sprintf("invitados_%s.csv", job.JobID)
	outPath := path.Join(outDir, filename)

	invitados, err := invitadoService.Listar()
	if err != nil {
		fallar(err)
		return
	}

	f, err := os.Create(outPath)
	if err != nil {
		fallar(err)
		return
	}

	if err := escribirCSVInvitados(f, invitados); err != nil {
		f.Close()
		fallar(err)
		return
	}
	if err := f.Close(); err != nil {
		fallar(err)
		return
	}

	fp := outPath
	config.DB.Model(&job).Updates(map[string]interface{}{"status": "done", "file_path": fp})
}

// escribirCSVInvitados vuelca el listado al destino y devuelve el primer
// error del writer, para no dar por buena una exportación a medio escribir.
func escribirCSVInvitados(destino io.Writer, invitados []models.Invitado) error {
	w := csv.NewWriter(destino)

	w.Write([]string{"nombre", "telefono", "token", "estado", "mensaje",
		"cantidad_invitaciones", "fecha_confirmacion", "whatsapp_enviado", "acompanantes"})

	for _, invitado := range invitados {
		confirmacion := ""
		if invitado.FechaConfirmacion != nil {
			confirmacion = invitado.FechaConfirmacion.Format(time.RFC3339)
		}
		nombres := make([]string, 0, len(invitado.Acompanantes))
		for _, a := range invitado.Acompanantes {
			nombres = append(nombres, a.NombreCompleto)
		}
		w.Write([]string{
			invitado.Nombre,
			invitado.Telefono,
			invitado.Token,
			string(invitado.Estado),
			invitado.Mensaje,
			fmt.Sprintf("%d", invitado.CantidadInvitaciones),
			confirmacion,
			fmt.Sprintf("%t", invitado.WhatsappEnviado),
			strings.Join(nombres, " | "),
		})
	}

	w.Flush()
	return w.Error()
}
