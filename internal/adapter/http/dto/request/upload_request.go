package request

type SignedUploadRequest struct {
	Folder      string `form:"folder"`
	FileName    string `form:"fileName" binding:"required,max=200"`
	ContentType string `form:"contentType" binding:"required"`
}
