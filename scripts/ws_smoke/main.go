package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/mkrasnov/sudoku-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	name := flag.String("name", "tester", "player display name")
	room := flag.String("room", "", "room code to join; empty creates a new room")
	difficulty := flag.String("difficulty", "easy", "difficulty when creating a room")
	text := flag.String("text", "hello from smoke test", "chat line to send")
	attempts := flag.Int("attempts", 5, "dial attempts before giving up")
	backoff := flag.Duration("backoff", time.Second, "delay between dial attempts")
	timeout := flag.Duration("timeout", 10*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, err := dial(ctx, *addr, *attempts, *backoff)
	if err != nil {
		return err
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(msgType string, data any) error {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", msgType, err)
		}
		if err := wsjson.Write(ctx, conn, proto.Inbound{Type: msgType, Data: payload}); err != nil {
			return fmt.Errorf("send %s: %w", msgType, err)
		}
		return nil
	}

	if *room == "" {
		err = send(proto.InboundTypeCreateRoom, proto.CreateRoomData{
			PlayerName: *name,
			Difficulty: *difficulty,
		})
	} else {
		err = send(proto.InboundTypeJoinRoom, proto.JoinRoomData{
			RoomCode:   *room,
			PlayerName: *name,
		})
	}
	if err != nil {
		return err
	}

	if err := send(proto.InboundTypeChatMessage, proto.ChatData{Message: *text}); err != nil {
		return err
	}

	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			return fmt.Errorf("read: %w", err)
		}

		fmt.Printf("received: type=%s", outbound.Type)
		if outbound.Event != "" {
			fmt.Printf(" event=%s", outbound.Event)
		}
		if outbound.Error != nil {
			fmt.Printf(" error=%s (%s)", outbound.Error.Message, outbound.Error.Code)
		}
		if outbound.Data != nil {
			raw, _ := json.Marshal(outbound.Data)
			fmt.Printf(" data=%s", raw)
		}
		fmt.Println()
	}
}

// dial retries a fixed number of times with fixed backoff, mirroring the
// reconnect policy of the reference web client.
func dial(ctx context.Context, addr string, attempts int, backoff time.Duration) (*websocket.Conn, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		conn, _, err := websocket.Dial(ctx, addr, nil)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("dial %s after %d attempts: %w", addr, attempts, lastErr)
}
