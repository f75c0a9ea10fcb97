package http

import (
	"encoding/json"

	"github.com/mkrasnov/sudoku-server/internal/core"
	"github.com/mkrasnov/sudoku-server/internal/proto"
	"github.com/mkrasnov/sudoku-server/internal/sudoku"
)

// dispatch decodes one inbound command and calls into the hub. A non-nil
// proto.Error is echoed back to the sender; a non-nil error tears the
// connection down. Missing payload fields are passed through as zero values,
// matching the trusting protocol contract.
func (h *WSHandler) dispatch(client *core.Client, inbound proto.Inbound) (*proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeCreateRoom:
		var data proto.CreateRoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		var puzzle, solution sudoku.Grid
		if data.Puzzle != nil && data.Solution != nil {
			puzzle, solution = *data.Puzzle, *data.Solution
		} else {
			puzzle, solution = h.puzzles.Generate(sudoku.ParseDifficulty(data.Difficulty))
		}
		h.hub.CreateRoom(client, data.PlayerName, puzzle, solution)
		return nil, nil
	case proto.InboundTypeJoinRoom:
		var data proto.JoinRoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		h.hub.JoinRoom(client, data.RoomCode, data.PlayerName)
		return nil, nil
	case proto.InboundTypeGameUpdate:
		var data proto.GameUpdateData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		h.hub.UpdateGrid(client, data.Grid, data.Progress)
		return nil, nil
	case proto.InboundTypeChatMessage:
		var data proto.ChatData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		h.hub.PostChat(client, data.Message)
		return nil, nil
	case proto.InboundTypeSectionCompleted:
		var data proto.SectionCompletedData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		h.hub.SectionCompleted(client, data.SectionType)
		return nil, nil
	case proto.InboundTypeGameCompleted:
		var data proto.GameCompletedData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		h.hub.GameCompleted(client, data.Time)
		return nil, nil
	case proto.InboundTypeGetRoomInfo:
		var data proto.RoomInfoRequest
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		h.hub.RoomInfo(client, data.RoomCode)
		return nil, nil
	default:
		return &proto.Error{Code: core.ErrCodeBadRequest, Message: "unknown message type"}, nil
	}
}

func toProtoPlayers(players []core.Player) []proto.Player {
	out := make([]proto.Player, 0, len(players))
	for _, p := range players {
		out = append(out, proto.Player{
			ID:             p.ID,
			Name:           p.Name,
			Progress:       p.Progress,
			Grid:           p.Grid,
			IsHost:         p.IsHost,
			Completed:      p.Completed,
			CompletionTime: p.CompletionTime,
		})
	}
	return out
}

func toProtoChat(msg core.ChatMessage) proto.ChatMessageData {
	return proto.ChatMessageData{
		ID:        msg.ID,
		Player:    msg.Player,
		Message:   msg.Text,
		Timestamp: msg.Timestamp,
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomCreated:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventRoomCreated,
			Data: proto.RoomCreatedData{
				RoomCode: event.RoomCode,
				Players:  toProtoPlayers(event.Players),
			},
		}
	case core.EventPlayerJoined:
		data := proto.PlayerJoinedData{
			Player:  event.Player,
			Players: toProtoPlayers(event.Players),
		}
		if event.Puzzle != nil {
			data.Puzzle = *event.Puzzle
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventPlayerJoined,
			Data:  data,
		}
	case core.EventPlayerLeft:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventPlayerLeft,
			Data: proto.PlayerLeftData{
				Player:  event.Player,
				Players: toProtoPlayers(event.Players),
			},
		}
	case core.EventPlayerUpdate:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventPlayerUpdate,
			Data: proto.PlayerUpdateData{
				PlayerName: event.Player,
				Progress:   event.Progress,
				Players:    toProtoPlayers(event.Players),
			},
		}
	case core.EventChatMessage:
		if event.Chat == nil {
			break
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventChatMessage,
			Data:  toProtoChat(*event.Chat),
		}
	case core.EventSectionCompleted:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventSectionCompleted,
			Data: proto.SectionCompletedEvent{
				Player:      event.Player,
				SectionType: event.Section,
			},
		}
	case core.EventGameCompleted:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventGameCompleted,
			Data: proto.GameCompletedEvent{
				Player:  event.Player,
				Time:    event.Seconds,
				Players: toProtoPlayers(event.Players),
			},
		}
	case core.EventRoomInfo:
		messages := make([]proto.ChatMessageData, 0, len(event.Chats))
		for _, msg := range event.Chats {
			messages = append(messages, toProtoChat(msg))
		}
		data := proto.RoomInfoData{
			Players:  toProtoPlayers(event.Players),
			Messages: messages,
		}
		if event.Puzzle != nil {
			data.Puzzle = *event.Puzzle
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventRoomInfo,
			Data:  data,
		}
	case core.EventError:
		if event.Err == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: core.ErrCodeInternal, Message: "unknown error"}}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Err.Code, Message: event.Err.Message},
		}
	}
	return proto.Outbound{Type: proto.OutboundTypeEvent}
}
