package character

import (
	"strconv"

	"atlas-characters/item"
)

// RestStamina is the JSON:API representation of a character's stamina
type RestStamina struct {
	Id         uint32  `json:"-"`
	Stamina    int     `json:"stamina"`
	MaxStamina int     `json:"maxStamina"`
	Rate       int     `json:"rate"`
	Mode       string  `json:"mode"`
	Speed      float64 `json:"speed"`
	Velocity   float64 `json:"velocity"`
	Moving     bool    `json:"moving"`
	Depleted   bool    `json:"depleted"`
}

func (r RestStamina) GetName() string {
	return "stamina"
}

func (r RestStamina) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *RestStamina) SetID(id string) error {
	v, err := strconv.Atoi(id)
	if err != nil {
		return err
	}
	r.Id = uint32(v)
	return nil
}

type RestItem struct {
	Index  int    `json:"index"`
	ItemId uint32 `json:"itemId"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// RestInventory is the JSON:API representation of a character's inventory
type RestInventory struct {
	Id            uint32     `json:"-"`
	StackCount    int        `json:"stackCount"`
	CurrentWeight int        `json:"currentWeight"`
	MaxWeight     int        `json:"maxWeight"`
	Items         []RestItem `json:"items"`
}

func (r RestInventory) GetName() string {
	return "inventories"
}

func (r RestInventory) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *RestInventory) SetID(id string) error {
	v, err := strconv.Atoi(id)
	if err != nil {
		return err
	}
	r.Id = uint32(v)
	return nil
}

// PickUpRequest is the body of a pick up request
type PickUpRequest struct {
	Data struct {
		Type       string `json:"type"`
		Attributes struct {
			ItemId uint32 `json:"itemId"`
		} `json:"attributes"`
	} `json:"data"`
}

func TransformStamina(m Model) (RestStamina, error) {
	s := m.Stamina()
	return RestStamina{
		Id:         m.Id(),
		Stamina:    s.Stamina(),
		MaxStamina: s.MaxStamina(),
		Rate:       s.Rate(),
		Mode:       s.Mode().String(),
		Speed:      m.Speed(),
		Velocity:   m.Velocity(),
		Moving:     m.IsMoving(),
		Depleted:   s.IsDepleted(),
	}, nil
}

func TransformItem(index int, m item.Model) RestItem {
	return RestItem{
		Index:  index,
		ItemId: m.Id(),
		Name:   m.Name(),
		Weight: m.Weight(),
	}
}

func TransformInventory(m Model) (RestInventory, error) {
	items := make([]RestItem, 0, m.StackCount())
	for i, im := range m.Items() {
		items = append(items, TransformItem(i, im))
	}
	return RestInventory{
		Id:            m.Id(),
		StackCount:    m.StackCount(),
		CurrentWeight: m.CurrentWeight(),
		MaxWeight:     m.MaxWeight(),
		Items:         items,
	}, nil
}
