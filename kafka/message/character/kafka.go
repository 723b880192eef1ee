package character

// Character lifecycle events published by the character service
const (
	EnvEventTopicStatus    = "EVENT_TOPIC_CHARACTER_STATUS"
	StatusEventTypeCreated = "CREATED"
	StatusEventTypeDeleted = "DELETED"
)

type StatusEvent[E any] struct {
	CharacterId uint32 `json:"characterId"`
	Type        string `json:"type"`
	WorldId     byte   `json:"worldId"`
	Body        E      `json:"body"`
}

type CreatedStatusEventBody struct {
	Name string `json:"name"`
}

type DeletedStatusEventBody struct {
}

// Locomotion and inventory commands
const (
	EnvCommandTopic = "COMMAND_TOPIC_CHARACTER_LOCOMOTION"

	CommandSprint         = "SPRINT"
	CommandRun            = "RUN"
	CommandWalk           = "WALK"
	CommandIdle           = "IDLE"
	CommandMove           = "MOVE"
	CommandPickUp         = "PICK_UP"
	CommandDrop           = "DROP"
	CommandPrintInventory = "PRINT_INVENTORY"
)

type Command[E any] struct {
	CharacterId uint32 `json:"characterId"`
	Type        string `json:"type"`
	Body        E      `json:"body"`
}

type LocomotionBody struct {
}

type MoveBody struct {
	Forward float64 `json:"forward"`
	Right   float64 `json:"right"`
}

type PickUpBody struct {
	ItemId uint32 `json:"itemId"`
}

type DropBody struct {
	Index int `json:"index"`
}

type PrintInventoryBody struct {
}

// Locomotion and inventory events
const (
	EnvEventTopicLocomotionStatus = "EVENT_TOPIC_CHARACTER_LOCOMOTION_STATUS"

	EventLocomotionChanged = "LOCOMOTION_CHANGED"
	EventStaminaDepleted   = "STAMINA_DEPLETED"
	EventItemAdded         = "ITEM_ADDED"
	EventItemRemoved       = "ITEM_REMOVED"
	EventError             = "ERROR"
)

type Event[E any] struct {
	CharacterId uint32 `json:"characterId"`
	Type        string `json:"type"`
	Body        E      `json:"body"`
}

type LocomotionChangedBody struct {
	Mode   string  `json:"mode"`
	Speed  float64 `json:"speed"`
	Forced bool    `json:"forced"`
}

type StaminaDepletedBody struct {
	Stamina    int `json:"stamina"`
	MaxStamina int `json:"maxStamina"`
}

type ItemBody struct {
	ItemId        uint32 `json:"itemId"`
	Name          string `json:"name"`
	Weight        int    `json:"weight"`
	Index         int    `json:"index"`
	CurrentWeight int    `json:"currentWeight"`
	MaxWeight     int    `json:"maxWeight"`
}

type ErrorBody struct {
	ErrorType string `json:"errorType"`
	Message   string `json:"message"`
	Context   string `json:"context"`
}
