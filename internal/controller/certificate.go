package controller

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/SeakMengs/CertVerify/internal/certcsv"
	"github.com/SeakMengs/CertVerify/internal/constant"
	"github.com/SeakMengs/CertVerify/internal/model"
	"github.com/SeakMengs/CertVerify/internal/service"
	"github.com/SeakMengs/CertVerify/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CertificateController struct {
	*baseController
}

const (
	MsgCertificateNotFound     = "Certificate not found"
	MsgCertificateNotActive    = "Certificate is not active"
	MsgCertificateVerified     = "Certificate verified successfully"
	MsgInvalidCertificateNo    = "Invalid certificate number"
	MsgInvalidCertificateData  = "Invalid certificate data"
	MsgCertificateNumberExists = "Certificate number already exists"
	MsgCertificateDeleted      = "Certificate deleted successfully"
	MsgInternalServerError     = "Internal server error"
	MsgCSVParseError           = "CSV parse error"
)

type VerifyResponse struct {
	Message     string                      `json:"message"`
	Status      constant.VerificationStatus `json:"status"`
	Certificate *model.Certificate          `json:"certificate,omitempty"`
}

func (cc CertificateController) Verify(ctx *gin.Context) {
	type Request struct {
		CertificateNumber string `json:"certificateNumber" form:"certificateNumber" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		cc.app.Logger.Debugf("Verify: bad request: %v", err)
		ctx.JSON(http.StatusBadRequest, VerifyResponse{Message: MsgInvalidCertificateNo, Status: constant.VerificationInvalidInput})
		return
	}

	res := cc.app.Certificate.Verify(ctx, body.CertificateNumber)

	switch res.Status {
	case constant.VerificationValid:
		ctx.JSON(http.StatusOK, VerifyResponse{Message: MsgCertificateVerified, Status: res.Status, Certificate: res.Certificate})
	case constant.VerificationInactive:
		ctx.JSON(http.StatusBadRequest, VerifyResponse{Message: MsgCertificateNotActive, Status: res.Status, Certificate: res.Certificate})
	case constant.VerificationNotFound:
		ctx.JSON(http.StatusNotFound, VerifyResponse{Message: MsgCertificateNotFound, Status: res.Status})
	case constant.VerificationInvalidInput:
		ctx.JSON(http.StatusBadRequest, VerifyResponse{Message: MsgInvalidCertificateNo, Status: res.Status})
	default:
		ctx.JSON(http.StatusInternalServerError, VerifyResponse{Message: MsgInternalServerError, Status: constant.VerificationError})
	}
}

func (cc CertificateController) List(ctx *gin.Context) {
	certificates, err := cc.app.Certificate.List(ctx)
	if err != nil {
		cc.app.Logger.Errorf("List certificates: %v", err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, MsgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, certificates)
}

func (cc CertificateController) Create(ctx *gin.Context) {
	var body model.CertificateInput

	if err := ctx.ShouldBindJSON(&body); err != nil {
		cc.app.Logger.Debugf("Create certificate: invalid body: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, MsgInvalidCertificateData, util.GenerateErrorMessages(err))
		return
	}

	certificate, err := cc.app.Certificate.Create(ctx, body)
	if err != nil {
		cc.writeServiceError(ctx, "Create certificate", err)
		return
	}

	ctx.JSON(http.StatusCreated, certificate)
}

func (cc CertificateController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	var body model.CertificateUpdate

	if err := ctx.ShouldBindJSON(&body); err != nil {
		cc.app.Logger.Debugf("Update certificate %s: invalid body: %v", id, err)
		util.ResponseFailed(ctx, http.StatusBadRequest, MsgInvalidCertificateData, util.GenerateErrorMessages(err))
		return
	}

	certificate, err := cc.app.Certificate.Update(ctx, id, body)
	if err != nil {
		cc.writeServiceError(ctx, "Update certificate "+id, err)
		return
	}

	ctx.JSON(http.StatusOK, certificate)
}

func (cc CertificateController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	deleted, err := cc.app.Certificate.Delete(ctx, id)
	if err != nil {
		cc.app.Logger.Errorf("Delete certificate %s: %v", id, err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, MsgInternalServerError)
		return
	}

	if !deleted {
		util.ResponseMessage(ctx, http.StatusNotFound, MsgCertificateNotFound)
		return
	}

	util.ResponseMessage(ctx, http.StatusOK, MsgCertificateDeleted)
}

// BulkImport accepts raw CSV text, or JSON {"csv": "..."}. The whole file is
// parsed first; rows are then created one by one and failures are collected.
func (cc CertificateController) BulkImport(ctx *gin.Context) {
	type Request struct {
		CSV string `json:"csv" binding:"required"`
	}

	var text string
	if ctx.ContentType() == binding.MIMEJSON {
		var body Request
		if err := ctx.ShouldBindJSON(&body); err != nil {
			util.ResponseFailed(ctx, http.StatusBadRequest, MsgCSVParseError, util.GenerateErrorMessages(err))
			return
		}
		text = body.CSV
	} else {
		raw, err := ctx.GetRawData()
		if err != nil {
			util.ResponseFailed(ctx, http.StatusBadRequest, MsgCSVParseError, util.GenerateErrorMessages(err, "csv"))
			return
		}
		text = string(raw)
	}

	inputs, err := certcsv.Parse(text)
	if err != nil {
		cc.app.Logger.Debugf("Bulk import: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, MsgCSVParseError, util.GenerateErrorMessages(err, "csv"))
		return
	}

	ctx.JSON(http.StatusOK, cc.app.Certificate.BulkImport(ctx, inputs))
}

func (cc CertificateController) Template(ctx *gin.Context) {
	ctx.Header("Content-Disposition", `attachment; filename="`+certcsv.TemplateFileName+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(certcsv.Template()))
}

func (cc CertificateController) Export(ctx *gin.Context) {
	certificates, err := cc.app.Certificate.List(ctx)
	if err != nil {
		cc.app.Logger.Errorf("Export certificates: %v", err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, MsgInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := certcsv.Write(&buf, certificates); err != nil {
		cc.app.Logger.Errorf("Export certificates: %v", err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, MsgInternalServerError)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="certificates.csv"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// QRCode serves a PNG linking to the public verification page.
// Optional query: size (pixels, default 256, capped at 1024).
func (cc CertificateController) QRCode(ctx *gin.Context) {
	id := ctx.Param("id")

	size := constant.QR_CODE_DEFAULT_SIZE
	if s := ctx.Query("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid size", util.GenerateErrorMessages(errors.New("size must be a positive integer"), "size"))
			return
		}
		size = min(n, constant.QR_CODE_MAX_SIZE)
	}

	certificate, err := cc.app.Certificate.Get(ctx, id)
	if err != nil {
		cc.writeServiceError(ctx, "QR code for certificate "+id, err)
		return
	}

	png, err := util.GenerateQRCodePNG(util.VerificationURL(cc.app.Config.FrontendURL, certificate.CertificateNumber), size)
	if err != nil {
		cc.app.Logger.Errorf("QR code for certificate %s: %v", id, err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, MsgInternalServerError)
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

func (cc CertificateController) writeServiceError(ctx *gin.Context, op string, err error) {
	var ve *service.ValidationError

	switch {
	case errors.As(err, &ve):
		util.ResponseFailed(ctx, http.StatusBadRequest, MsgInvalidCertificateData, util.GenerateErrorMessages(ve.Err))
	case errors.Is(err, service.ErrDuplicateCertificateNumber):
		util.ResponseMessage(ctx, http.StatusBadRequest, MsgCertificateNumberExists)
	case errors.Is(err, service.ErrCertificateNotFound):
		util.ResponseMessage(ctx, http.StatusNotFound, MsgCertificateNotFound)
	default:
		cc.app.Logger.Errorf("%s: %v", op, err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, MsgInternalServerError)
	}
}
