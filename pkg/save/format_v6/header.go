package format_v6

import "fmt"

// Header is the fixed-shape record at the start of every payload.
type Header struct {
	SaveID         uint64    `json:"save_id" yaml:"save_id" cbor:"save_id" msgpack:"save_id"`
	HubID          uint32    `json:"hub_id" yaml:"hub_id" cbor:"hub_id" msgpack:"hub_id"`
	Gate           uint64    `json:"gate" yaml:"gate" cbor:"gate" msgpack:"gate"`
	Delay          uint64    `json:"delay" yaml:"delay" cbor:"delay" msgpack:"delay"`
	MenuVisible    bool      `json:"menu_visible" yaml:"menu_visible" cbor:"menu_visible" msgpack:"menu_visible"`
	ClockSpeed     uint32    `json:"clock_speed" yaml:"clock_speed" cbor:"clock_speed" msgpack:"clock_speed"`
	Dependencies   []uint64  `json:"dependencies" yaml:"dependencies" cbor:"dependencies" msgpack:"dependencies"`
	Description    string    `json:"description" yaml:"description" cbor:"description" msgpack:"description"`
	CameraPosition Point     `json:"camera_position" yaml:"camera_position" cbor:"camera_position" msgpack:"camera_position"`
	Synced         SyncState `json:"synced" yaml:"synced" cbor:"synced" msgpack:"synced"`
	CampaignBound  bool      `json:"campaign_bound" yaml:"campaign_bound" cbor:"campaign_bound" msgpack:"campaign_bound"`
	ArchScore      uint16    `json:"arch_score" yaml:"arch_score" cbor:"arch_score" msgpack:"arch_score"`
	PlayerData     []byte    `json:"player_data" yaml:"player_data" cbor:"player_data" msgpack:"player_data"`
	HubDescription string    `json:"hub_description" yaml:"hub_description" cbor:"hub_description" msgpack:"hub_description"`
}

// ReadHeader decodes the 14 header fields in file order.
func ReadHeader(c *Cursor) (Header, error) {
	var h Header
	var err error

	if h.SaveID, err = c.ReadU64(); err != nil {
		return Header{}, fmt.Errorf("save_id: %w", err)
	}
	if h.HubID, err = c.ReadU32(); err != nil {
		return Header{}, fmt.Errorf("hub_id: %w", err)
	}
	if h.Gate, err = c.ReadU64(); err != nil {
		return Header{}, fmt.Errorf("gate: %w", err)
	}
	if h.Delay, err = c.ReadU64(); err != nil {
		return Header{}, fmt.Errorf("delay: %w", err)
	}
	if h.MenuVisible, err = c.ReadBool(); err != nil {
		return Header{}, fmt.Errorf("menu_visible: %w", err)
	}
	if h.ClockSpeed, err = c.ReadU32(); err != nil {
		return Header{}, fmt.Errorf("clock_speed: %w", err)
	}
	if h.Dependencies, err = ReadShortSeq(c, decodeU64); err != nil {
		return Header{}, fmt.Errorf("dependencies: %w", err)
	}
	if h.Description, err = ReadString(c); err != nil {
		return Header{}, fmt.Errorf("description: %w", err)
	}
	if h.CameraPosition, err = c.ReadPoint(); err != nil {
		return Header{}, fmt.Errorf("camera_position: %w", err)
	}
	if h.Synced, err = ReadSyncState(c); err != nil {
		return Header{}, fmt.Errorf("synced: %w", err)
	}
	if h.CampaignBound, err = c.ReadBool(); err != nil {
		return Header{}, fmt.Errorf("campaign_bound: %w", err)
	}
	if h.ArchScore, err = c.ReadU16(); err != nil {
		return Header{}, fmt.Errorf("arch_score: %w", err)
	}
	if h.PlayerData, err = ReadShortBytes(c); err != nil {
		return Header{}, fmt.Errorf("player_data: %w", err)
	}
	if h.HubDescription, err = ReadString(c); err != nil {
		return Header{}, fmt.Errorf("hub_description: %w", err)
	}

	return h, nil
}
