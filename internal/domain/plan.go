package domain

// Category is the closed set of plan categories.
type Category string

const (
	CategoryWeightLoss Category = "weight-loss"
	CategoryMuscle     Category = "muscle"
	CategoryYoga       Category = "yoga"
	CategoryCardio     Category = "cardio"
	CategoryGeneral    Category = "general"
)

// Categories lists every valid Category.
var Categories = []Category{CategoryWeightLoss, CategoryMuscle, CategoryYoga, CategoryCardio, CategoryGeneral}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Plan is a purchasable, timed training program authored by a trainer.
type Plan struct {
	ID          string   `bson:"_id" json:"id"`
	TrainerID   string   `bson:"trainerId" json:"trainerId"`
	TrainerName string   `bson:"trainerName" json:"trainerName"` // Copied at creation, not kept in sync with renames
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Price       float64  `bson:"price" json:"price"`
	Duration    int      `bson:"duration" json:"duration"` // days
	Image       string   `bson:"image" json:"image"`
	Category    Category `bson:"category" json:"category"`
}

// PlanInput carries the trainer-supplied fields of a new Plan.
// ID and TrainerName are filled in on creation.
type PlanInput struct {
	TrainerID   string
	Title       string
	Description string
	Price       float64
	Duration    int
	Image       string
	Category    Category
}
