package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vaibhav/lifehub-api/internal/services"
)

type LoanHandler struct {
	loanService   *services.LoanService
	exportService *services.ExportService
}

func NewLoanHandler(loanService *services.LoanService, exportService *services.ExportService) *LoanHandler {
	return &LoanHandler{loanService: loanService, exportService: exportService}
}

// @Summary List Loans
// @Description Get all loans, newest first
// @Tags Loans
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /loans [get]
func (h *LoanHandler) Index(c *gin.Context) {
	loans, err := h.loanService.ListLoans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]interface{}, 0, len(loans))
	for _, l := range loans {
		responses = append(responses, l.ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"loans": responses})
}

// @Summary Active Loan
// @Description Get the most recently created loan with its progress figures
// @Tags Loans
// @Produce json
// @Success 200 {object} models.LoanResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /loans/active [get]
func (h *LoanHandler) Active(c *gin.Context) {
	loan, err := h.loanService.GetActiveLoan(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loan.ToResponse())
}

// @Summary Get Loan
// @Description Get a loan by ID
// @Tags Loans
// @Produce json
// @Param id path int true "Loan ID"
// @Success 200 {object} models.LoanResponse
// @Security BearerAuth
// @Router /loans/{id} [get]
func (h *LoanHandler) Show(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	loan, err := h.loanService.GetLoan(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loan.ToResponse())
}

// @Summary Create Loan
// @Description Create a loan; the balance starts at the full principal
// @Tags Loans
// @Accept json
// @Produce json
// @Param request body services.CreateLoanInput true "Loan"
// @Success 201 {object} models.LoanResponse
// @Security BearerAuth
// @Router /loans [post]
func (h *LoanHandler) Create(c *gin.Context) {
	var input services.CreateLoanInput
	if err := BindNestedOrFlat(c, "loan", &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loan, err := h.loanService.CreateLoan(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, loan.ToResponse())
}

// @Summary Update Loan
// @Description Update loan metadata; the balance only moves through payments
// @Tags Loans
// @Accept json
// @Produce json
// @Param id path int true "Loan ID"
// @Param request body services.UpdateLoanInput true "Fields"
// @Success 200 {object} models.LoanResponse
// @Security BearerAuth
// @Router /loans/{id} [put]
func (h *LoanHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var input services.UpdateLoanInput
	if err := BindNestedOrFlat(c, "loan", &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loan, err := h.loanService.UpdateLoan(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loan.ToResponse())
}

// @Summary Delete Loan
// @Description Delete a loan and its payment ledger
// @Tags Loans
// @Produce json
// @Param id path int true "Loan ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /loans/{id} [delete]
func (h *LoanHandler) Destroy(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.loanService.DeleteLoan(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "loan deleted"})
}

// @Summary List Payments
// @Description Get the payment ledger for a loan, newest first
// @Tags Loans
// @Produce json
// @Param id path int true "Loan ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /loans/{id}/payments [get]
func (h *LoanHandler) Payments(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	payments, err := h.loanService.ListPayments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// @Summary Post Payment
// @Description Append a payment to the ledger and move the balance
// @Tags Loans
// @Accept json
// @Produce json
// @Param id path int true "Loan ID"
// @Param request body services.PostPaymentInput true "Payment"
// @Success 201 {object} models.LoanPayment
// @Security BearerAuth
// @Router /loans/{id}/payments [post]
func (h *LoanHandler) PostPayment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var input services.PostPaymentInput
	if err := BindNestedOrFlat(c, "payment", &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.AmountPaid <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount_paid must be positive"})
		return
	}

	payment, err := h.loanService.PostPayment(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// @Summary Payoff Projection
// @Description Simulate payoff with a fixed monthly payment and optional extra
// @Tags Loans
// @Accept json
// @Produce json
// @Param id path int true "Loan ID"
// @Param request body services.ProjectPayoffInput true "Scenario"
// @Success 200 {object} finance.PayoffProjection
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /loans/{id}/projection [post]
func (h *LoanHandler) Projection(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var input services.ProjectPayoffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projection, err := h.loanService.ProjectPayoff(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection)
}

// @Summary Suggested EMI
// @Description EMI that clears the current balance over the given months
// @Tags Loans
// @Produce json
// @Param id path int true "Loan ID"
// @Param months query int true "Tenure in months"
// @Success 200 {object} map[string]float64
// @Security BearerAuth
// @Router /loans/{id}/emi [get]
func (h *LoanHandler) EMI(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	months, _ := strconv.Atoi(c.Query("months"))
	emi, err := h.loanService.SuggestedEMI(c.Request.Context(), id, months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"emi": emi, "months": months})
}

// @Summary Loan Statement PDF
// @Description Generate and stream a PDF statement of the payment ledger
// @Tags Loans
// @Produce application/pdf
// @Param id path int true "Loan ID"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /loans/{id}/statement [get]
func (h *LoanHandler) Statement(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	result, err := h.exportService.LoanStatementPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	file, err := h.exportService.OpenArtifact(result.Path)
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	c.Header("Content-Disposition", "attachment; filename="+result.Filename)
	c.Header("Content-Type", "application/pdf")
	io.Copy(c.Writer, file)
}

// parseID reads the :id path parameter, writing a 400 on failure
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, err
	}
	return uint(id), nil
}
