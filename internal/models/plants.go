// models/plants.go - Plant inventory, care schedule and propagation models
package models

// PlantCondition rates the state of a stocked plant.
type PlantCondition string

const (
	ConditionExcellent PlantCondition = "excellent"
	ConditionHealthy   PlantCondition = "healthy"
	ConditionFair      PlantCondition = "fair"
	ConditionPoor      PlantCondition = "poor"
)

// CareLevel is how demanding a plant is to keep.
type CareLevel string

const (
	CareEasy     CareLevel = "easy"
	CareModerate CareLevel = "moderate"
	CareHard     CareLevel = "hard"
	CareExpert   CareLevel = "expert"
)

// LightRequirement is the lighting a plant needs.
type LightRequirement string

const (
	LightLow    LightRequirement = "low"
	LightMedium LightRequirement = "medium"
	LightHigh   LightRequirement = "high"
)

// PropagationStatus tracks a propagation project's progress.
type PropagationStatus string

const (
	PropagationPlanning  PropagationStatus = "planning"
	PropagationGrowing   PropagationStatus = "growing"
	PropagationReady     PropagationStatus = "ready"
	PropagationCompleted PropagationStatus = "completed"
)

// PlantItem is one line of the plant inventory.
type PlantItem struct {
	ID              ID               `json:"id"`
	Name            string           `json:"name"`
	Species         string           `json:"species"`
	Quantity        int              `json:"quantity"`
	Location        string           `json:"location"`
	PurchasePrice   float64          `json:"purchasePrice"`
	SellPrice       float64          `json:"sellPrice"`
	Supplier        string           `json:"supplier"`
	DateAcquired    string           `json:"dateAcquired"`
	Condition       PlantCondition   `json:"condition"`
	CareLevel       CareLevel        `json:"careLevel"`
	Light           LightRequirement `json:"lightRequirement"`
	PropagationType string           `json:"propagationType"`
	Notes           string           `json:"notes"`
}

// ProfitPerUnit is the margin on a single plant at current prices.
func (p PlantItem) ProfitPerUnit() float64 {
	return p.SellPrice - p.PurchasePrice
}

// PlantCareTask is a scheduled care action for one plant. PlantID is a soft
// reference: the task survives deletion of its plant and is rendered with a
// placeholder name.
type PlantCareTask struct {
	ID        ID     `json:"id"`
	PlantID   ID     `json:"plantId"`
	TaskType  string `json:"taskType"`
	Frequency string `json:"frequency"`
	LastDone  string `json:"lastDone"`
	NextDue   string `json:"nextDue"`
	Completed bool   `json:"completed"`
}

// PropagationProject tracks producing new stock from a parent plant.
// ParentPlantID is a soft reference like PlantCareTask.PlantID.
type PropagationProject struct {
	ID               ID                `json:"id"`
	ParentPlantID    ID                `json:"parentPlantId"`
	Method           string            `json:"method"`
	DateStarted      string            `json:"dateStarted"`
	ExpectedReady    string            `json:"expectedReady"`
	ExpectedQuantity int               `json:"expectedQuantity"`
	ActualQuantity   int               `json:"actualQuantity"`
	Status           PropagationStatus `json:"status"`
}

// UnknownPlantName is rendered when a care task or propagation project points
// at a plant that no longer exists.
const UnknownPlantName = "Unknown Plant"

// PlantName resolves a plant id to its display name, tolerating dangling
// references.
func PlantName(plants []PlantItem, id ID) string {
	for _, p := range plants {
		if p.ID == id {
			return p.Name
		}
	}
	return UnknownPlantName
}
