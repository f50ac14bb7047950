package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"employee-matcher-backend/internal/delivery/http/response"
	"employee-matcher-backend/internal/domain"
	"employee-matcher-backend/pkg/apperror"
	"employee-matcher-backend/pkg/document"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

// NewResumeHandler registers the resume upload route
func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	r.POST("/upload-resume", handler.UploadResume)
}

// UploadResume godoc
// @Summary      Upload a resume
// @Description  Upload a resume (PDF or DOCX), extract a structured candidate profile with AI, and store it.
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume file (PDF or DOCX)"
// @Success      201  {object}  response.Response{data=domain.CandidateRecord}
// @Failure      400  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /upload-resume [post]
func (h *ResumeHandler) UploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}

	record, err := h.resumeUC.UploadResume(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.Error(uploadError(err))
		return
	}

	response.Success(c, http.StatusCreated, "Resume processed and candidate profile created.", record)
}

// uploadError maps pipeline failures onto HTTP semantics: bad input is the
// caller's problem, unusable AI output is an upstream problem.
func uploadError(err error) error {
	var unsupported *document.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		return apperror.BadRequest(unsupported.Error())
	}
	if errors.Is(err, domain.ErrEmptyDocument) {
		return apperror.BadRequest("The uploaded document appears to be empty or could not be read.")
	}
	var extraction *domain.ExtractionError
	if errors.As(err, &extraction) {
		return apperror.BadGateway("Failed to parse resume using AI. The resume format might be too complex or the AI model returned an invalid response.", err)
	}
	return err
}
