package gridmenu_test

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/item"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/lang"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform/platformtest"
)

func Example() {
	cfg := gridmenu.DefaultConfig()
	m, err := gridmenu.New(gridmenu.Options{
		Config: &cfg,
		Logger: slog.New(slog.DiscardHandler),
	})
	if err != nil {
		panic(err)
	}

	player := platformtest.NewUser()
	host := platformtest.NewHost(player)
	if err := m.Register(host); err != nil {
		panic(err)
	}

	confirm := gridmenu.NewConfirmationMenu(gridmenu.ConfirmationSpec[string]{Name: "buy"})
	product := gridmenu.CreateItem(m, gridmenu.ItemSpec[string]{
		Name: "product",
		Build: func(_ platform.User, name string) *item.Builder {
			return item.Of(item.Diamond).Name(lang.Literal("§b" + name))
		},
		OnClick: func(c gridmenu.Click, name string) error {
			return confirm.Ask(c.Manager, c.User, name, func(_ platform.User, name string) error {
				fmt.Println("bought", name)
				return nil
			}, nil)
		},
	})
	shop := gridmenu.NewMenu(gridmenu.MenuSpec[any]{
		Name: "shop",
		Rows: 1,
		Title: func(platform.User, any) lang.Translation {
			return lang.Literal("Shop")
		},
		Build: func(_ platform.User, _ any, c *gridmenu.Content) {
			c.SetValue(4, product, "Diamond")
		},
	})

	if err := shop.Open(m, player, nil); err != nil {
		panic(err)
	}
	fmt.Println(host.LastOpen().Title.Plain())

	m.HandleClick(gridmenu.ClickEvent{User: player, Slot: 4, InMenu: true})
	fmt.Println(host.LastOpen().Title.Plain(), m.HistoryDepth(player))

	m.HandleClick(gridmenu.ClickEvent{User: player, Slot: 30, InMenu: true})

	// Output:
	// Shop
	// Are you sure? 2
	// bought Diamond
}
