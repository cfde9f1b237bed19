package models

import "time"

// ExportJob registra una exportación asíncrona del listado de invitados.
type ExportJob struct {
	JobID     string    `gorm:"column:job_id;primaryKey;size:36" json:"job_id"`
	Formato   string    `gorm:"column:formato;size:10" json:"formato"` // csv
	Status    string    `gorm:"column:status;size:20;default:'queued'" json:"status"`
	FilePath  *string   `gorm:"column:file_path;type:text" json:"file_path,omitempty"`
	ErrorMsg  *string   `gorm:"column:error_msg;type:text" json:"error_msg,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ExportJob) TableName() string {
	return "export_jobs"
}
