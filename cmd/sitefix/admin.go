package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/bookvibe/internal/admin"
	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/service"
	"github.com/mmcdole/bookvibe/internal/store"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin portal layout and session",
}

var adminLayoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Render the sidebar and top bar into every admin page",
	Args:  cobra.NoArgs,
	RunE:  runAdminLayout,
}

var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Start an admin session",
	Args:  cobra.NoArgs,
	RunE:  runAdminLogin,
}

var adminLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the admin session",
	Args:  cobra.NoArgs,
	RunE:  runAdminLogout,
}

var adminStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the admin session",
	Args:  cobra.NoArgs,
	RunE:  runAdminStatus,
}

var adminHashCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print a bcrypt hash for admin.password_hash",
	Args:  cobra.NoArgs,
	Run:   runAdminHash,
}

var adminSidebarCmd = &cobra.Command{
	Use:   "sidebar FILE",
	Short: "Toggle the stored mobile sidebar state of a page",
	Args:  cobra.ExactArgs(1),
	Run:   runAdminSidebar,
}

func init() {
	adminLayoutCmd.Flags().String("dir", "", "admin pages directory (defaults to <root>/<site.admin_dir>)")
	adminLoginCmd.Flags().String("user", "", "admin username (defaults to admin.username)")
	adminLogoutCmd.Flags().String("page", admin.DefaultPage, "page the logout was triggered from")

	adminCmd.AddCommand(adminLayoutCmd, adminLoginCmd, adminLogoutCmd, adminStatusCmd, adminHashCmd, adminSidebarCmd)
	rootCmd.AddCommand(adminCmd)
}

// openSession opens local storage and returns the admin session on it
func openSession(e *env) (*service.SessionService, func(), error) {
	storage, err := store.Open(e.cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return service.NewSessionService(storage, e.cfg.Admin), func() { storage.Close() }, nil
}

// The commands below hold the storage handle open, so they return errors
// through RunE and let the deferred close run.

func runAdminLayout(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = filepath.Join(e.root, e.cfg.Site.AdminDir)
	}

	session, closeFn, err := openSession(e)
	if err != nil {
		return err
	}
	defer closeFn()

	renderer, err := admin.NewRenderer()
	if err != nil {
		return err
	}

	summary, err := admin.NewInjector(renderer, session, e.logger).Run(cmd.Context(), dir, e.walkOptions(), dryRun)
	if errors.Is(err, domain.ErrNotLoggedIn) {
		return fmt.Errorf("%w (run `sitefix admin login` first)", err)
	}
	if err != nil {
		return err
	}
	printSummary(summary)
	return nil
}

func runAdminLogin(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	user, _ := cmd.Flags().GetString("user")
	if user == "" {
		user = e.cfg.Admin.Username
	}
	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	session, closeFn, err := openSession(e)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := session.Login(user, password); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", user)
	fmt.Printf("Redirect: %s\n", admin.DefaultPage)
	return nil
}

func runAdminLogout(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	page, _ := cmd.Flags().GetString("page")

	session, closeFn, err := openSession(e)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := session.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	fmt.Printf("Redirect: %s\n", admin.LogoutTarget(admin.CurrentPath(page)))
	return nil
}

func runAdminStatus(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	session, closeFn, err := openSession(e)
	if err != nil {
		return err
	}
	defer closeFn()

	user, err := session.CurrentUser()
	if errors.Is(err, domain.ErrNotLoggedIn) {
		fmt.Println("Not logged in")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s since %s\n", user.Username, user.LoggedInAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func runAdminHash(cmd *cobra.Command, args []string) {
	password, err := readPassword("Password: ")
	exitOnError(err)
	if password == "" {
		exitOnError(errors.New("password cannot be empty"))
	}

	hash, err := service.HashPassword(password)
	exitOnError(err)
	fmt.Println(hash)
}

func runAdminSidebar(cmd *cobra.Command, args []string) {
	open, err := admin.ToggleFile(args[0])
	exitOnError(err)
	if open {
		fmt.Println("Sidebar open")
	} else {
		fmt.Println("Sidebar closed")
	}
}

// readPassword reads a password without echo on a terminal, or one line from piped stdin
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
