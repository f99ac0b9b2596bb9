package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"sync"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/Kodelavinaykumar/QuickKart1/internal/metrics"
	"github.com/Kodelavinaykumar/QuickKart1/internal/repository"
	"github.com/shopspring/decimal"
)

const CartKey = "cart"

type CartOptions struct {
	Key     string
	Metrics metrics.Recorder
	Logger  *slog.Logger
}

// Cart は追加順の明細リスト。
// 同じ商品は1行にまとめ、数量は常に1以上。
type Cart struct {
	mu      sync.Mutex
	storage repository.LocalStorage
	key     string
	metrics metrics.Recorder
	logger  *slog.Logger

	items []model.LineItem
}

// NewCart は保存済みのカートを読み込む。壊れていれば空から始める。
func NewCart(storage repository.LocalStorage, opts CartOptions) *Cart {
	c := &Cart{
		storage: storage,
		key:     opts.Key,
		metrics: opts.Metrics,
		logger:  opts.Logger,
	}
	if c.key == "" {
		c.key = CartKey
	}
	if c.metrics == nil {
		c.metrics = metrics.Nop{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	c.restore()
	return c
}

func (c *Cart) restore() {
	data, err := c.storage.GetItem(c.key)
	if errors.Is(err, repository.ErrNotFound) {
		return
	}
	if err != nil {
		c.logger.Warn("failed to read cart", slog.String("key", c.key), slog.String("error", err.Error()))
		return
	}

	var stored []model.LineItem
	if err := json.Unmarshal(data, &stored); err != nil {
		c.logger.Info("dropping corrupt cart", slog.String("key", c.key), slog.String("error", err.Error()))
		if rmErr := c.storage.RemoveItem(c.key); rmErr != nil {
			c.logger.Warn("failed to remove cart", slog.String("key", c.key), slog.String("error", rmErr.Error()))
		}
		return
	}

	c.items = normalize(stored)
}

// normalize は不正な行を落とし、同じ商品の行をまとめる
func normalize(stored []model.LineItem) []model.LineItem {
	out := make([]model.LineItem, 0, len(stored))
	pos := map[int64]int{}
	for _, it := range stored {
		if it.ProductID == 0 || it.Quantity < 1 {
			continue
		}
		if i, ok := pos[it.ProductID]; ok {
			out[i].Quantity = addCapped(out[i].Quantity, it.Quantity)
			continue
		}
		pos[it.ProductID] = len(out)
		out = append(out, it)
	}
	return out
}

// AddItem は同じ商品なら数量+1、無ければ数量1で末尾に追加する。
func (c *Cart) AddItem(p model.Product) error {
	return c.AddItemQuantity(p, 1)
}

// AddItemQuantity はAddItemをn回呼んだのと同じ結果にする。
// 表示項目は最初に追加した時点のものを保持する。
// 合計がint64に収まらないnはErrInvalidQuantity。
func (c *Cart) AddItemQuantity(p model.Product, n int64) error {
	return c.add(p, n, false)
}

// AddItemWithinStock はカート内の数量と合わせてp.StockQuantityを超えない時だけ追加する。
// 超える場合はErrInsufficientStockで、カートは変わらない。
func (c *Cart) AddItemWithinStock(p model.Product, n int64) error {
	return c.add(p, n, true)
}

func (c *Cart) add(p model.Product, n int64, withinStock bool) error {
	if p.ID == 0 {
		return ErrInvalidProduct
	}
	if n < 1 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.snapshot()
	i := indexOf(next, p.ID)

	inCart := int64(0)
	if i >= 0 {
		inCart = next[i].Quantity
	}
	if withinStock && (p.StockQuantity < 1 || n > p.StockQuantity-inCart) {
		return ErrInsufficientStock
	}
	if n > math.MaxInt64-inCart {
		return ErrInvalidQuantity
	}

	if i >= 0 {
		next[i].Quantity += n
	} else {
		item := model.NewLineItem(p)
		item.Quantity = n
		next = append(next, item)
	}
	return c.commit(next, "add")
}

// RemoveItem は該当行を消す。無ければ何もしない。
func (c *Cart) RemoveItem(productID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := indexOf(c.items, productID)
	if i < 0 {
		return nil
	}
	next := c.snapshot()
	next = append(next[:i], next[i+1:]...)
	return c.commit(next, "remove")
}

// UpdateQuantity は数量を置き換える。1未満はErrInvalidQuantity。
// 在庫との比較は呼び出し側で行う。
func (c *Cart) UpdateQuantity(productID int64, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := indexOf(c.items, productID)
	if i < 0 {
		return nil
	}
	if c.items[i].Quantity == quantity {
		return nil
	}
	next := c.snapshot()
	next[i].Quantity = quantity
	return c.commit(next, "update")
}

func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.commit(nil, "clear")
}

// Items は明細のコピー
func (c *Cart) Items() []model.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Get は1行分（無ければfalse）
func (c *Cart) Get(productID int64) (model.LineItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := indexOf(c.items, productID); i >= 0 {
		return c.items[i], true
	}
	return model.LineItem{}, false
}

func (c *Cart) TotalItemCount() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count()
}

func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotal()
}

// Summary はカート画面の注文サマリー
func (c *Cart) Summary() model.CartSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return model.NewCartSummary(c.snapshot(), c.count(), c.subtotal())
}

func (c *Cart) count() int64 {
	var n int64
	for _, it := range c.items {
		n = addCapped(n, it.Quantity)
	}
	return n
}

func (c *Cart) subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.LineTotal())
	}
	return total
}

func (c *Cart) snapshot() []model.LineItem {
	out := make([]model.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// commit は保存に成功したときだけメモリ上の状態を差し替える。
// 空になったらキーごと消す。
func (c *Cart) commit(next []model.LineItem, kind string) error {
	if len(next) == 0 {
		if err := c.storage.RemoveItem(c.key); err != nil {
			return &PersistError{Key: c.key, Err: err}
		}
	} else {
		data, err := json.Marshal(next)
		if err != nil {
			return &PersistError{Key: c.key, Err: err}
		}
		if err := c.storage.SetItem(c.key, data); err != nil {
			return &PersistError{Key: c.key, Err: err}
		}
	}

	c.items = next
	c.metrics.RecordCartMutation(kind)
	return nil
}

// addCapped はint64の上限で止める加算
func addCapped(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}
	return a + b
}

func indexOf(items []model.LineItem, productID int64) int {
	for i, it := range items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}
