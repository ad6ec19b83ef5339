package chess

import "testing"

func TestRender(t *testing.T) {
	board := NewBoard()

	tests := []struct {
		name string
		move Move
		want string
	}{
		{
			name: "rook move",
			move: Move{From: A3, To: B6, Piece: W(Rook), Kind: Quiet},
			want: "Ra3b6",
		},
		{
			name: "rook capture",
			move: Move{From: A3, To: B6, Piece: W(Rook), Captured: B(Pawn), Kind: Capture},
			want: "Ra3xb6",
		},
		{
			name: "king capture",
			move: Move{From: H2, To: D5, Piece: W(King), Kind: Capture},
			want: "Kh2xd5",
		},
		{
			name: "pawn advance has no letter",
			move: Move{From: E2, To: E4, Piece: W(Pawn), Kind: Quiet},
			want: "e2e4",
		},
		{
			name: "piece taken from board",
			move: Move{From: G1, To: F3, Kind: Quiet},
			want: "Ng1f3",
		},
		{
			name: "en passant renders as capture",
			move: Move{From: E5, To: D6, Piece: W(Pawn), Captured: B(Pawn), Kind: EnPassant},
			want: "e5xd6",
		},
		{
			name: "kingside castle",
			move: Move{From: E1, To: G1, Piece: W(King), Kind: Castle, CastleSide: Kingside},
			want: "O-O",
		},
		{
			name: "queenside castle",
			move: Move{From: E8, To: C8, Piece: B(King), Kind: Castle, CastleSide: Queenside},
			want: "O-O-O",
		},
		{
			name: "promotion",
			move: Move{From: E7, To: E8, Piece: W(Pawn), Kind: Promotion, Promotion: Queen},
			want: "e7e8=Q",
		},
		{
			name: "capturing underpromotion",
			move: Move{From: B2, To: A1, Piece: B(Pawn), Captured: W(Rook), Kind: Promotion, Promotion: Knight},
			want: "b2xa1=N",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.move, board); got != tt.want {
				t.Errorf("Render() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMoveString(t *testing.T) {
	m := Move{From: H2, To: D5, Piece: W(King), Kind: Capture}
	if got := m.String(); got != "Kh2xd5" {
		t.Errorf("String() = %q; want %q", got, "Kh2xd5")
	}
}

func TestMovePredicates(t *testing.T) {
	tests := []struct {
		name          string
		move          Move
		wantCapture   bool
		wantCastle    bool
		wantPromotion bool
	}{
		{"quiet", Move{Kind: Quiet}, false, false, false},
		{"capture", Move{Kind: Capture, Captured: B(Knight)}, true, false, false},
		{"en passant", Move{Kind: EnPassant}, true, false, false},
		{"castle", Move{Kind: Castle, CastleSide: Kingside}, false, true, false},
		{"promotion", Move{Kind: Promotion, Promotion: Queen}, false, false, true},
		{"capturing promotion", Move{Kind: Promotion, Promotion: Rook, Captured: B(Bishop)}, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.IsCapture(); got != tt.wantCapture {
				t.Errorf("IsCapture() = %v; want %v", got, tt.wantCapture)
			}
			if got := tt.move.IsCastle(); got != tt.wantCastle {
				t.Errorf("IsCastle() = %v; want %v", got, tt.wantCastle)
			}
			if got := tt.move.IsPromotion(); got != tt.wantPromotion {
				t.Errorf("IsPromotion() = %v; want %v", got, tt.wantPromotion)
			}
		})
	}
}
