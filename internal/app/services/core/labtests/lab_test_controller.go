package labtests

import (
	"context"
	"net/http"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type LabTestController struct {
	Log            *zap.Logger
	LabTestUsecase contracts.LabTestUsecase
	InternalConfig *config.InternalConfig
}

func NewLabTestController(logger *zap.Logger, labTestUsecase contracts.LabTestUsecase, internalConfig *config.InternalConfig) *LabTestController {
	return &LabTestController{
		Log:            logger,
		LabTestUsecase: labTestUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *LabTestController) ListLabTests(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.LabTestUsecase.ListLabTests(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabTestsFetchedSuccess, response)
}

func (ctrl *LabTestController) RequestLabTest(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateLabTest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.LabTestUsecase.RequestLabTest(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.LabTestRequestedSuccess, response)
}

func (ctrl *LabTestController) StartLabTest(w http.ResponseWriter, r *http.Request) {
	labTestID := chi.URLParam(r, constvars.URLParamLabTestID)
	if labTestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(constvars.URLParamLabTestID))
		return
	}
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.LabTestUsecase.StartLabTest(ctx, sessionData, labTestID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabTestStartedSuccess, nil)
}

// CompleteLabTest accepts a multipart form: a required "results" text field,
// an optional "notes" field and an optional "results_file" attachment that is
// stored in the object store.
func (ctrl *LabTestController) CompleteLabTest(w http.ResponseWriter, r *http.Request) {
	labTestID := chi.URLParam(r, constvars.URLParamLabTestID)
	if labTestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(constvars.URLParamLabTestID))
		return
	}

	maxUploadBytes := ctrl.InternalConfig.App.LabResultMaxUploadSizeInMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileTooLarge(err, ctrl.InternalConfig.App.LabResultMaxUploadSizeInMB))
		return
	}

	request := &requests.CompleteLabTest{
		Results: r.FormValue("results"),
		Notes:   r.FormValue("notes"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	var upload *contracts.LabResultUpload
	file, header, err := r.FormFile("results_file")
	if err == nil {
		defer file.Close()
		upload = &contracts.LabResultUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get(constvars.HeaderContentType),
			Size:        header.Size,
			Reader:      file,
		}
	} else if err != http.ErrMissingFile {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.LabTestUsecase.CompleteLabTest(ctx, sessionData, labTestID, request, upload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabTestCompletedSuccess, response)
}
