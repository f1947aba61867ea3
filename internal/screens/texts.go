package screens

const (
	labelPrice          = "📈 Цены"
	labelGift           = "Получить подарок 🎁"
	labelAbout          = "Обо мне"
	labelBookingInfo    = "Запись на консультацию"
	labelBook           = "Записаться на консультацию"
	labelBackToMenu     = "⬅️ Вернуться в меню"
	labelMainMenu       = "Главное меню"
	labelSubscribe      = "Подписаться"
	labelCheckSubscribe = "Проверить подписку"
	labelClaimGift      = "🎁 Забрать подарок"
)

const textGreeting = "Привет! 🥦 Я дипломированный нутрициолог. " +
	"Этот бот поможет ответить тебе на самые популярные вопросы. Скорее переходи в меню 👇🏼"

const textMainMenu = `📋 Главное меню

Доступные команды:
/price — Цены и форматы работы
/guides — Получить подарок 🎁
/about_me — Обо мне

Выбирай нужную кнопку ниже:`

const textPrice = `💬 Форматы работы:

1️⃣ Консультация до 1 часа + рекомендации на месяц

Что входит:
- индивидуальный разбор твоего текущего питания;
- рекомендации по улучшению питания;
- интерпретация имеющихся анализов;
- при необходимости подберу для тебя БАДы;
- составлю индивидуальный примерный рацион питания;
- составлю план действий для улучшения имеющихся проблем и симптомов.
💵 Стоимость: 3000 руб.
🎁 в подарок ты получишь конструктор здоровой тарелки питания!

2️⃣ Сопровождение на 1 месяц

Что входит:
- индивидуальный разбор твоего текущего питания;
- рекомендации по улучшению питания;
- интерпретация имеющихся анализов;
- при необходимости подберу для тебя БАДы;
- составлю индивидуальный примерный рацион питания;
- составлю план действий для улучшения имеющихся проблем и симптомов;
- еженедельная обратная связь по итогам пройденной недели, корректировки и мотивация, возможность задавать вопросы.
💵 Стоимость: 7000 руб.
🎁 в подарок ты получишь конструктор здоровой тарелки питания!

🔥 При записи на консультацию в течение сегодняшнего дня сделаю скидку 1000 руб.

Буду рада помочь решить тебе свою давнюю проблему! 😇 Я за осознанный подход к питанию, без диет и без крайностей.`

const textAbout = `🙋🏻‍♀️ Обо мне

Я дипломированный нутрициолог. Помогаю выстроить питание без диет и крайностей: разбираю рацион, анализы и привычки, и вместе мы составляем понятный план.

В моём телеграм-канале делюсь рецептами, разборами и полезными гайдами.`

const (
	textGuideListHeader = "Список бесплатных гайдов:"
	textGuideListEmpty  = "Пока нет доступных гайдов."
	textUntitled        = "Без названия"
	textGuideMissing    = "Гайд не найден."
)

const (
	textGuideGreeting   = "Привет! 😇 Я дипломированный нутрициолог и подготовила для тебя подарок 🎁"
	textGuideSubscribe  = "Для того, чтобы получить его, подпишись на мой телеграм-канал"
	textOpenChannel     = "Откройте канал в Telegram"
	textNotSubscribed   = "Похоже, вы не подписаны на наш канал.\nПодпишитесь и снова нажмите кнопку:"
	textGiftUnlocked    = "Спасибо за подписку!\nТвой подарок ниже 🎁\nНадеюсь гайд и мой телеграм-канал будут тебе полезны 😊"
	textBookingInfo     = "📝 Запись на консультацию\n\nНажми кнопку ниже, чтобы оставить заявку. Я свяжусь с тобой в личных сообщениях и подберём удобное время."
	textBookingDone     = "✅ Заявка принята!\n\nЯ свяжусь с тобой в ближайшее время."
	textCatalogHeader   = "Каталог гайдов"
	textCatalogEmpty    = "Каталог пуст или не читается."
	textDeliveryFailure = "Не удалось отправить файл. Попробуйте позже."
)
