package seed

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sigkihan-server/entities"
)

var defaultFoods = []struct {
	Name  string
	Image string
}{
	{"양파", "/food_images/onion.svg"},
	{"양배추", "/food_images/cabbage.svg"},
	{"김치류", "/food_images/kimchi.svg"},
	{"우유", "/food_images/milk.svg"},
	{"돼지고기", "/food_images/pork.svg"},
	{"소고기", "/food_images/beef.svg"},
	{"고등어", "/food_images/mackerel.svg"},
	{"청경채", "/food_images/bokchoy.svg"},
	{"계란", "/food_images/egg.svg"},
	{"소시지", "/food_images/sausage.svg"},
	{"두부", "/food_images/tofu.svg"},
	{"밥", "/food_images/rice.svg"},
	{"오징어", "/food_images/squid.svg"},
	{"조개", "/food_images/clam.svg"},
	{"배추", "/food_images/napa_cabbage.svg"},
	{"무", "/food_images/radish.svg"},
	{"마늘", "/food_images/garlic.svg"},
	{"대파", "/food_images/leek.svg"},
	{"고추", "/food_images/chili.svg"},
	{"된장", "/food_images/doenjang.svg"},
	{"간장", "/food_images/soy_sauce.svg"},
	{"고추장", "/food_images/redpepper_paste.svg"},
	{"참기름", "/food_images/sesame_oil.svg"},
	{"들기름", "/food_images/perilla_oil.svg"},
	{"고구마", "/food_images/sweet_potato.svg"},
	{"사과", "/food_images/apple.svg"},
	{"오렌지", "/food_images/orange.svg"},
	{"피망", "/food_images/bell_pepper.svg"},
	{"바나나", "/food_images/banana.svg"},
	{"기타", "/food_images/etc.svg"},
}

// SeedDefaultFoods inserts the default food catalog. Existing names are kept
// as-is, so seeding is safe to run on every startup.
func SeedDefaultFoods(db *gorm.DB) error {
	foods := make([]*entities.DefaultFood, 0, len(defaultFoods))
	for _, item := range defaultFoods {
		foods = append(foods, &entities.DefaultFood{
			ID:       uuid.New(),
			Name:     item.Name,
			ImageURL: item.Image,
			Comment:  fmt.Sprintf("%s의 소비기한이 3일 남았어요!", item.Name),
		})
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(foods).Error; err != nil {
		return err
	}

	fmt.Println("Default food catalog seeded")
	return nil
}

var profileImages = []struct {
	Name  string
	Image string
}{
	{"기본 프로필 1", "/profile_images/profile_1.svg"},
	{"기본 프로필 2", "/profile_images/profile_2.svg"},
	{"기본 프로필 3", "/profile_images/profile_3.svg"},
	{"기본 프로필 4", "/profile_images/profile_4.svg"},
}

// SeedProfileImages inserts the selectable preset profile images. Uploaded
// images get their own rows later, keyed by the owner's id.
func SeedProfileImages(db *gorm.DB) error {
	images := make([]*entities.ProfileImage, 0, len(profileImages))
	for _, item := range profileImages {
		images = append(images, &entities.ProfileImage{
			ID:       uuid.New(),
			Name:     item.Name,
			ImageURL: item.Image,
		})
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(images).Error; err != nil {
		return err
	}

	fmt.Println("Preset profile images seeded")
	return nil
}
