package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	exchangev1 "github.com/chilly266futon/exchangeService/gen/pb"
	"github.com/chilly266futon/exchangeService/pkg/exchangeclient"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:50051", "Exchange service address")
	flag.Parse()

	client, err := exchangeclient.New(exchangeclient.Config{Address: *addr})
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	userID := "user_123"

	fmt.Println("Creating buy order...")
	order, err := client.CreateOrder(ctx, userID, "BTC", exchangev1.OrderType_BUY, 50000.0, 100)
	if err != nil {
		log.Fatalf("create order: %v", err)
	}
	fmt.Printf("Created order: id=%d, symbol=%s, type=%s, price=%.2f, qty=%d\n",
		order.Id, order.Symbol, order.Type, order.Price, order.Quantity)

	fmt.Println("\nGetting balance...")
	balance, err := client.GetBalance(ctx, userID, "USD")
	if err != nil {
		log.Fatalf("get balance: %v", err)
	}
	fmt.Printf("Balance: user=%s, currency=%s, balance=%.2f\n",
		balance.UserId, balance.Currency, balance.Balance)

	fmt.Println("\nGetting active orders...")
	orders, err := client.GetActiveOrders(ctx, userID, "")
	if err != nil {
		log.Fatalf("get active orders: %v", err)
	}
	fmt.Printf("Active orders: %d\n", len(orders))
	for _, o := range orders {
		fmt.Printf("  - Order %d: %s %d @ %.2f\n", o.Id, o.Symbol, o.Quantity, o.Price)
	}

	fmt.Println("\nStreaming quotes for BTC, ETH (5 messages)...")
	streamCtx, cancel := context.WithCancel(ctx)
	stream, err := client.StreamQuotes(streamCtx, []string{"BTC", "ETH"})
	if err != nil {
		log.Fatalf("stream quotes: %v", err)
	}
	for i := 0; i < 5; i++ {
		quote, err := stream.Recv()
		if err != nil {
			log.Fatalf("recv quote: %v", err)
		}
		fmt.Printf("  %s: bid=%.2f ask=%.2f last=%.2f volume=%d\n",
			quote.Symbol, quote.Bid, quote.Ask, quote.Last, quote.Volume)
	}
	cancel()

	fmt.Println("\nCancelling order...")
	cancelResp, err := client.CancelOrder(ctx, userID, order.Id)
	if err != nil {
		log.Fatalf("cancel order: %v", err)
	}
	fmt.Printf("Cancel: success=%v, message=%q\n", cancelResp.Success, cancelResp.Message)

	orders, err = client.GetActiveOrders(ctx, userID, "")
	if err != nil {
		log.Fatalf("get active orders: %v", err)
	}
	fmt.Printf("Active orders after cancel: %d\n", len(orders))
}
