package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/souravramos/locallibrary/internal/entities"
)

// InstancesController serves the JSON CRUD API for physical book copies.
type InstancesController struct {
	store InstanceStore
}

func NewInstancesController(store InstanceStore) *InstancesController {
	return &InstancesController{store: store}
}

type instanceRequest struct {
	BookID  *uint  `json:"book_id"`
	Imprint string `json:"imprint" binding:"required,max=200"`
	DueBack string `json:"due_back" binding:"omitempty,datetime=2006-01-02"`
	Status  string `json:"status" binding:"omitempty,oneof=maintenance on_loan available reserved"`
}

func (req *instanceRequest) toEntity() *entities.BookInstance {
	instance := &entities.BookInstance{
		BookID:  req.BookID,
		Imprint: req.Imprint,
		Status:  entities.LoanStatus(req.Status),
	}
	if req.DueBack != "" {
		if t, err := time.Parse("2006-01-02", req.DueBack); err == nil {
			instance.DueBack = &t
		}
	}
	return instance
}

// List returns all copies ordered by due-back date, optionally filtered by
// ?status=.
func (controller *InstancesController) List(c *gin.Context) {
	var (
		instances []entities.BookInstance
		err       error
	)

	if status := c.Query("status"); status != "" {
		loanStatus := entities.LoanStatus(status)
		if !loanStatus.Valid() {
			respondBadRequest(c, "unknown status: "+status)
			return
		}
		instances, err = controller.store.GetInstancesByStatus(loanStatus)
	} else {
		instances, err = controller.store.GetAllInstances()
	}
	if err != nil {
		respondInternalError(c, err, "list instances")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"instances": instances, "count": len(instances)})
}

func (controller *InstancesController) Get(c *gin.Context) {
	instance, err := controller.store.GetInstanceByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "book instance")
		return
	}
	c.IndentedJSON(http.StatusOK, instance)
}

func (controller *InstancesController) Create(c *gin.Context) {
	var req instanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	instance := req.toEntity()
	if err := controller.store.CreateInstance(instance); err != nil {
		respondStoreError(c, err, "book instance")
		return
	}
	respondCreated(c, instance)
}

func (controller *InstancesController) Update(c *gin.Context) {
	var req instanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	instance := req.toEntity()
	instance.ID = c.Param("id")
	if err := controller.store.UpdateInstance(instance); err != nil {
		respondStoreError(c, err, "book instance")
		return
	}
	c.IndentedJSON(http.StatusOK, instance)
}

func (controller *InstancesController) Delete(c *gin.Context) {
	if err := controller.store.DeleteInstance(c.Param("id")); err != nil {
		respondStoreError(c, err, "book instance")
		return
	}
	respondSuccess(c, "book instance deleted")
}
