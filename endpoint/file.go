package endpoint

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"

	"github.com/dandrevielma/visoria-anesthesic-backend/config"
	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

// UploadRecordFile godoc
// @Summary      Upload a patient document
// @Description  Store a multipart file upload in object storage and attach its metadata to the record's patient
// @Tags         File
// @Accept       multipart/form-data
// @Produce      json
// @Security     SessionToken
// @Param        id path int true "Record ID"
// @Param        file formData file true "Document to upload"
// @Param        file_type formData string true "prescription|lab_result|imaging|ecg|medical_report|other"
// @Param        description formData string false "Free-text description"
// @Success      201 {object} model.PatientFile "File stored"
// @Failure      400 {object} object "Missing file or invalid file type"
// @Failure      404 {object} object "Record not found"
// @Router       /api/records/{id}/files [post]
func UploadRecordFile(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	record, ok := fetchRecordOrRespond(c, db, recordID)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "file is required", Err: err})
		return
	}

	fileType := c.PostForm("file_type")
	if fileType == "" {
		fileType = model.FileTypeOther
	}
	if !model.ValidFileType(fileType) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid file type",
			Err: fmt.Errorf("unknown file type %q", fileType),
		})
		return
	}

	storagePath := fmt.Sprintf("records/%d/%s%s", record.ID, uuid.NewString(), filepath.Ext(fileHeader.Filename))
	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	client, bucket := config.GetMinIOClient()
	storageURL := ""
	if client != nil {
		src, err := fileHeader.Open()
		if err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to read uploaded file", Err: err})
			return
		}
		defer src.Close()

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		_, err = client.PutObject(ctx, bucket, storagePath, src, fileHeader.Size, minio.PutObjectOptions{
			ContentType: mimeType,
		})
		if err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to store file", Err: err})
			return
		}
		storageURL = fmt.Sprintf("%s/%s/%s", client.EndpointURL(), bucket, storagePath)
	} else {
		log.Printf("Object storage disabled, keeping metadata only for %s", storagePath)
	}

	file := model.PatientFile{
		PatientID:   record.PatientID,
		RecordID:    &record.ID,
		FileType:    fileType,
		FileName:    fileHeader.Filename,
		FileSize:    fileHeader.Size,
		MimeType:    mimeType,
		StoragePath: storagePath,
		StorageURL:  storageURL,
		Description: c.PostForm("description"),
		UploadedBy:  sessionUserPtr(c),
	}
	if err := db.Create(&file).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save file metadata", Err: err})
		return
	}

	origin := originOf(c)
	util.LogActivity(util.ActivityEvent{
		RecordID:  &record.ID,
		UserID:    sessionUserPtr(c),
		Action:    model.ActivityFileUploaded,
		NewValue:  gin.H{"file_id": file.ID, "file_name": file.FileName},
		IP:        origin.IP,
		UserAgent: origin.Agent,
	})

	util.CallSuccessCreated(c, file)
}

// ListRecordFiles returns the live (non-deleted) files attached to a record.
func ListRecordFiles(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	if _, ok := fetchRecordOrRespond(c, db, recordID); !ok {
		return
	}

	var files []model.PatientFile
	if err := db.Where("record_id = ?", recordID).Order("created_at DESC").Find(&files).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list files", Err: err})
		return
	}

	util.CallSuccessOK(c, files)
}

// DeleteFile soft-deletes a file's metadata row and removes the stored
// object best-effort. The metadata row survives for auditing.
func DeleteFile(c *gin.Context) {
	fileID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var file model.PatientFile
	err := db.First(&file, fileID).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "File not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	if err := db.Delete(&file).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete file", Err: err})
		return
	}

	if client, bucket := config.GetMinIOClient(); client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.RemoveObject(ctx, bucket, file.StoragePath, minio.RemoveObjectOptions{}); err != nil {
			log.Printf("Failed to remove stored object %s: %v", file.StoragePath, err)
		}
	}

	origin := originOf(c)
	util.LogActivity(util.ActivityEvent{
		RecordID:  file.RecordID,
		UserID:    sessionUserPtr(c),
		Action:    model.ActivityFileDeleted,
		OldValue:  gin.H{"file_id": file.ID, "file_name": file.FileName},
		IP:        origin.IP,
		UserAgent: origin.Agent,
	})

	util.CallSuccessMessage(c, "File deleted", nil)
}
