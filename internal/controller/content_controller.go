package controller

import (
	"fmt"
	"path/filepath"
	"strings"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContentController 处理学习资源附件的上传与删除
type ContentController struct {
	StorageService *service.StorageService
}

func NewContentController(storageService *service.StorageService) *ContentController {
	return &ContentController{StorageService: storageService}
}

// @Summary 上传资源附件
// @Description 支持 pdf/md/txt/zip/png/jpg，返回可访问的 URL
// @Tags 内容
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "附件"
// @Success 200 {object} util.Response
// @Router /api/content/attachments [post]
func (c *ContentController) UploadAttachment(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "缺少上传文件")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedAttachment(ext) {
		util.BadRequest(ctx, fmt.Sprintf("不支持的文件类型: %s", ext))
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	filename := fmt.Sprintf("attachments/%s%s", model.GenerateUUID(), ext)
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, header.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"filename": filename,
		"url":      url,
	})
}

// @Summary 删除资源附件
// @Tags 内容
// @Produce json
// @Security ApiKeyAuth
// @Param filename query string true "上传时返回的文件名"
// @Success 200 {object} util.Response
// @Router /api/content/attachments [delete]
func (c *ContentController) DeleteAttachment(ctx *gin.Context) {
	filename := ctx.Query("filename")
	if filename == "" || strings.Contains(filename, "..") {
		util.BadRequest(ctx, "非法文件名")
		return
	}

	if err := c.StorageService.Delete(ctx.Request.Context(), filename); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

func allowedAttachment(ext string) bool {
	for _, allowed := range util.AllowedAttachmentExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
