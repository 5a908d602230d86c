package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"restaurant-menu-api/client"
	"restaurant-menu-api/models"
)

var categories = []string{
	"All", "Vegetarian", "Non-Vegetarian", "Breads", "Rice",
	"Snacks", "Desserts", "Beverages", "Tandoori",
}

func main() {
	server := flag.String("server", "http://localhost:8080", "Catalog service base URL")
	favPath := flag.String("favorites", defaultFavoritesPath(), "Favorites file")
	flag.Parse()
	if env := os.Getenv("MENU_SERVER"); env != "" && *server == "http://localhost:8080" {
		*server = env
	}

	api := client.New(*server)
	mgr := client.NewManager(api, client.NewFileStore(*favPath))

	fmt.Println("Loading menu...")
	mgr.Start()

	renderHome(mgr)
	adminMode := false
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(`Type "help" for commands.`)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		cmd, arg := splitCommand(scanner.Text())

		switch cmd {
		case "":
		case "home":
			renderHome(mgr)
		case "menu":
			renderMenu(mgr)
		case "favs":
			renderFavorites(mgr)
		case "search":
			mgr.SetSearch(arg)
			renderMenu(mgr)
		case "cat":
			mgr.SetCategory(arg)
			renderMenu(mgr)
		case "sort":
			mgr.CycleSort()
			renderMenu(mgr)
		case "clear":
			mgr.Clear()
			renderMenu(mgr)
		case "fav":
			if arg == "" {
				fmt.Println("usage: fav <item-id>")
				continue
			}
			if err := mgr.ToggleFavorite(arg); err != nil {
				fmt.Println("Error saving favorites:", err)
			} else if mgr.IsFavorite(arg) {
				fmt.Println("♥ added to favorites")
			} else {
				fmt.Println("removed from favorites")
			}
		case "admin":
			adminMode = !adminMode
			if adminMode {
				fmt.Println("Admin form enabled. Commands: add, update <id>, del <id>")
			} else {
				fmt.Println("Admin form hidden.")
			}
		case "add":
			if !adminMode {
				fmt.Println("Unknown command. Type \"help\".")
				continue
			}
			addItem(mgr, scanner)
		case "update":
			if !adminMode || arg == "" {
				fmt.Println("usage (admin mode): update <item-id>")
				continue
			}
			updateItem(mgr, scanner, arg)
		case "del":
			if !adminMode || arg == "" {
				fmt.Println("usage (admin mode): del <item-id>")
				continue
			}
			if err := mgr.DeleteItem(prompt(scanner, "Admin key: "), arg); err != nil {
				fmt.Println("Error:", err)
			} else {
				fmt.Println("Deleted.")
			}
		case "help":
			printHelp(adminMode)
		case "quit", "exit":
			return
		default:
			fmt.Println("Unknown command. Type \"help\".")
		}
	}
}

func defaultFavoritesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "favorites.json"
	}
	return filepath.Join(home, ".menu-browser-favorites.json")
}

func splitCommand(line string) (cmd, arg string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	cmd = strings.ToLower(parts[0])
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

func renderHome(m *client.Manager) {
	fmt.Println("═══ The Gourmet Haven ═══")
	if qr := m.QRCode(); qr != "" {
		fmt.Printf("Menu QR code ready (%d bytes inline). Scan to view.\n", len(qr))
	} else {
		fmt.Println("QR code unavailable.")
	}
}

func renderMenu(m *client.Manager) {
	view := m.View()
	items := m.Items()
	fmt.Printf("── Menu: %d items (search=%q category=%s sort=%s) ──\n",
		len(items), view.Search, view.Category, view.Sort)
	fmt.Println("Categories:", strings.Join(categories, ", "))
	for _, item := range items {
		mark := " "
		if m.IsFavorite(item.ID) {
			mark = "♥"
		}
		fmt.Printf("%s [%s] %s — %s — ₹%.2f (%s)\n",
			mark, item.ID, item.Name, item.Description, item.Price, item.Category)
	}
	if len(items) == 0 {
		fmt.Println("No items match your search or filter.")
	}
}

func renderFavorites(m *client.Manager) {
	items := m.FavoriteItems()
	fmt.Printf("── Favorites: %d items ──\n", len(items))
	for _, item := range items {
		fmt.Printf("♥ [%s] %s — ₹%.2f\n", item.ID, item.Name, item.Price)
	}
}

func addItem(m *client.Manager, sc *bufio.Scanner) {
	item := models.MenuItem{
		Name:        prompt(sc, "Name: "),
		Description: prompt(sc, "Description: "),
		Category:    prompt(sc, "Category: "),
		Image:       prompt(sc, "Image URL (optional): "),
	}
	price, err := strconv.ParseFloat(prompt(sc, "Price: "), 64)
	if err != nil {
		fmt.Println("Invalid price:", err)
		return
	}
	item.Price = price

	created, err := m.CreateItem(prompt(sc, "Admin key: "), item)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Created item", created.ID)
}

func updateItem(m *client.Manager, sc *bufio.Scanner, id string) {
	fields := map[string]interface{}{}
	if v := prompt(sc, "Name (blank to keep): "); v != "" {
		fields["name"] = v
	}
	if v := prompt(sc, "Description (blank to keep): "); v != "" {
		fields["description"] = v
	}
	if v := prompt(sc, "Price (blank to keep): "); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fmt.Println("Invalid price:", err)
			return
		}
		fields["price"] = price
	}
	if v := prompt(sc, "Category (blank to keep): "); v != "" {
		fields["category"] = v
	}
	if len(fields) == 0 {
		fmt.Println("Nothing to update.")
		return
	}

	updated, err := m.UpdateItem(prompt(sc, "Admin key: "), id, fields)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Updated item", updated.ID)
}

func prompt(sc *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}

func printHelp(adminMode bool) {
	fmt.Println(`Commands:
  home            show landing view with QR status
  menu            show the menu with current filters
  favs            show favorited items
  search <text>   filter by name/description
  cat <category>  filter by category ("All" clears)
  sort            cycle price sort: none → low-high → high-low
  clear           reset search, category and sort
  fav <id>        toggle an item as favorite
  admin           toggle the admin form
  quit            exit`)
	if adminMode {
		fmt.Println(`Admin commands:
  add             create a menu item (prompts for fields and key)
  update <id>     update fields of an item
  del <id>        delete an item`)
	}
}
